// Package settings keeps the record store endpoints and the funnel stages.
package settings

import (
	"context"
	"fmt"
	"strings"
	"sync"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
)

// Store layers persisted settings over the configured defaults.
type Store struct {
	repo     repository.SettingsRepository
	defaults model.Endpoints

	// serializes read-modify-write of the stage list
	mu sync.Mutex
}

// NewStore creates a Store with endpoint defaults taken from configuration.
func NewStore(repo repository.SettingsRepository, defaults model.Endpoints) *Store {
	return &Store{repo: repo, defaults: defaults}
}

// Endpoints returns the effective endpoints: saved values override the defaults.
func (s *Store) Endpoints(ctx context.Context) (model.Endpoints, error) {
	stored, found, err := s.repo.LoadEndpoints(ctx)
	if err != nil {
		return model.Endpoints{}, fmt.Errorf("load endpoints: %w", err)
	}
	if !found {
		return s.defaults, nil
	}
	return s.defaults.Merge(stored), nil
}

// SetEndpoints persists endpoints after trimming every URL.
func (s *Store) SetEndpoints(ctx context.Context, endpoints model.Endpoints) (model.Endpoints, error) {
	trimmed := model.Endpoints{
		Operators:    strings.TrimSpace(endpoints.Operators),
		Customers:    strings.TrimSpace(endpoints.Customers),
		StatusLog:    strings.TrimSpace(endpoints.StatusLog),
		Products:     strings.TrimSpace(endpoints.Products),
		Orders:       strings.TrimSpace(endpoints.Orders),
		OrderHistory: strings.TrimSpace(endpoints.OrderHistory),
		Tasks:        strings.TrimSpace(endpoints.Tasks),
	}
	if err := s.repo.SaveEndpoints(ctx, trimmed); err != nil {
		return model.Endpoints{}, fmt.Errorf("save endpoints: %w", err)
	}
	return s.defaults.Merge(trimmed), nil
}

// Stages returns the funnel stages in display order.
func (s *Store) Stages(ctx context.Context) ([]string, error) {
	stages, found, err := s.repo.LoadStages(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stages: %w", err)
	}
	if !found {
		return append([]string(nil), model.DefaultStages...), nil
	}
	return stages, nil
}

// AddStage appends a stage. Blank names and case-insensitive duplicates are rejected.
func (s *Store) AddStage(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidStage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stages, err := s.Stages(ctx)
	if err != nil {
		return nil, err
	}
	if indexOf(stages, name) >= 0 {
		return nil, fmt.Errorf("stage %q: %w", name, domainErrors.ErrAlreadyExists)
	}

	stages = append(stages, name)
	if err := s.repo.SaveStages(ctx, stages); err != nil {
		return nil, fmt.Errorf("save stages: %w", err)
	}
	return stages, nil
}

// RemoveStage deletes a stage by name.
func (s *Store) RemoveStage(ctx context.Context, name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stages, err := s.Stages(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(stages, strings.TrimSpace(name))
	if idx < 0 {
		return nil, fmt.Errorf("stage %q: %w", name, domainErrors.ErrNotFound)
	}

	stages = append(stages[:idx:idx], stages[idx+1:]...)
	if err := s.repo.SaveStages(ctx, stages); err != nil {
		return nil, fmt.Errorf("save stages: %w", err)
	}
	return stages, nil
}

func indexOf(stages []string, name string) int {
	for i, stage := range stages {
		if strings.EqualFold(stage, name) {
			return i
		}
	}
	return -1
}
