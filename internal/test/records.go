package test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
)

// RecordStoreStub serves rows per URL and records appended payloads.
type RecordStoreStub struct {
	Rows     map[string][]model.Row
	Errs     map[string]error
	FetchFn  func(context.Context, string) ([]model.Row, error)
	AppendFn func(context.Context, string, any) (repository.Receipt, error)

	mu      sync.Mutex
	Appends []AppendCall
	Fetches []string
}

// AppendCall captures one write.
type AppendCall struct {
	URL     string
	Payload any
}

// FetchRows returns configured rows or errors.
func (s *RecordStoreStub) FetchRows(ctx context.Context, url string) ([]model.Row, error) {
	s.mu.Lock()
	s.Fetches = append(s.Fetches, url)
	s.mu.Unlock()
	if s.FetchFn != nil {
		return s.FetchFn(ctx, url)
	}
	if err := s.Errs[url]; err != nil {
		return nil, err
	}
	return s.Rows[url], nil
}

// Append records the payload and returns an unconfirmed receipt.
func (s *RecordStoreStub) Append(ctx context.Context, url string, payload any) (repository.Receipt, error) {
	if s.AppendFn != nil {
		receipt, err := s.AppendFn(ctx, url, payload)
		if err != nil {
			return receipt, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Appends = append(s.Appends, AppendCall{URL: url, Payload: payload})
	return repository.Receipt{Endpoint: url}, nil
}

// Calls returns a copy of recorded writes.
func (s *RecordStoreStub) Calls() []AppendCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]AppendCall(nil), s.Appends...)
}

// PayloadRows flattens a recorded payload into rows keyed by column name.
func PayloadRows(payload any) []map[string]any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	var many []map[string]any
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	var one map[string]any
	if err := json.Unmarshal(raw, &one); err == nil {
		return []map[string]any{one}
	}
	return nil
}

// SchedulerStub records requested delayed resyncs.
type SchedulerStub struct {
	mu     sync.Mutex
	Delays []time.Duration
}

// Schedule records the delay.
func (s *SchedulerStub) Schedule(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Delays = append(s.Delays, d)
}

// Count returns the number of scheduled resyncs.
func (s *SchedulerStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Delays)
}

var _ repository.RecordReader = (*RecordStoreStub)(nil)
var _ repository.RecordWriter = (*RecordStoreStub)(nil)
