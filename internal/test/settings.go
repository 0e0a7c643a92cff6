package test

import (
	"context"
	"sync"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
)

// EndpointSourceStub returns fixed endpoints.
type EndpointSourceStub struct {
	Value model.Endpoints
	Err   error
}

// Endpoints returns the configured value.
func (s EndpointSourceStub) Endpoints(ctx context.Context) (model.Endpoints, error) {
	return s.Value, s.Err
}

// SettingsRepositoryStub keeps settings in memory and can fail on demand.
type SettingsRepositoryStub struct {
	mu        sync.Mutex
	endpoints *model.Endpoints
	stages    []string
	Err       error
	Saves     int
}

// LoadEndpoints returns stored endpoints.
func (s *SettingsRepositoryStub) LoadEndpoints(ctx context.Context) (model.Endpoints, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return model.Endpoints{}, false, s.Err
	}
	if s.endpoints == nil {
		return model.Endpoints{}, false, nil
	}
	return *s.endpoints, true, nil
}

// SaveEndpoints stores endpoints.
func (s *SettingsRepositoryStub) SaveEndpoints(ctx context.Context, endpoints model.Endpoints) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.endpoints = &endpoints
	s.Saves++
	return nil
}

// LoadStages returns stored stages.
func (s *SettingsRepositoryStub) LoadStages(ctx context.Context) ([]string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, false, s.Err
	}
	if s.stages == nil {
		return nil, false, nil
	}
	return append([]string(nil), s.stages...), true, nil
}

// SaveStages stores stages.
func (s *SettingsRepositoryStub) SaveStages(ctx context.Context, stages []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.stages = append([]string{}, stages...)
	s.Saves++
	return nil
}

var _ repository.SettingsRepository = (*SettingsRepositoryStub)(nil)
