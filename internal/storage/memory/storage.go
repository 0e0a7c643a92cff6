package memory

import (
	"context"
	"sync"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
)

// Storage keeps runtime settings for the lifetime of the process.
type Storage struct {
	mu        sync.RWMutex
	endpoints *model.Endpoints
	stages    []string
}

// New creates an empty in-memory settings store.
func New() *Storage {
	return &Storage{}
}

func (s *Storage) LoadEndpoints(context.Context) (model.Endpoints, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.endpoints == nil {
		return model.Endpoints{}, false, nil
	}
	return *s.endpoints, true, nil
}

func (s *Storage) SaveEndpoints(_ context.Context, endpoints model.Endpoints) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endpoints = &endpoints
	return nil
}

func (s *Storage) LoadStages(context.Context) ([]string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stages == nil {
		return nil, false, nil
	}
	return append([]string(nil), s.stages...), true, nil
}

func (s *Storage) SaveStages(_ context.Context, stages []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stages = append(make([]string, 0, len(stages)), stages...)
	return nil
}

var _ repository.SettingsRepository = (*Storage)(nil)
