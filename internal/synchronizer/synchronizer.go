// Package synchronizer pulls every record store collection and publishes one snapshot.
package synchronizer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
	"github.com/polkiloo/mentorcrm/internal/normalize"
	"github.com/polkiloo/mentorcrm/internal/state"
)

// EndpointSource resolves the currently configured record store URLs.
type EndpointSource interface {
	Endpoints(ctx context.Context) (model.Endpoints, error)
}

// Synchronizer fetches all collections concurrently and applies them to the state.
type Synchronizer struct {
	reader repository.RecordReader
	source EndpointSource
	state  *state.State
	logger *slog.Logger
	now    func() time.Time
}

// New creates a synchronizer.
func New(reader repository.RecordReader, source EndpointSource, st *state.State, logger *slog.Logger) *Synchronizer {
	return &Synchronizer{
		reader: reader,
		source: source,
		state:  st,
		logger: logger,
		now:    time.Now,
	}
}

type collection struct {
	name string
	url  string
	rows []model.Row
}

// Fetch reads all seven collections. A failing read yields an empty
// collection and a warning; it never fails the others.
func (s *Synchronizer) Fetch(ctx context.Context, endpoints model.Endpoints) model.Snapshot {
	collections := []*collection{
		{name: "operators", url: endpoints.Operators},
		{name: "customers", url: endpoints.Customers},
		{name: "status_log", url: endpoints.StatusLog},
		{name: "products", url: endpoints.Products},
		{name: "orders", url: endpoints.Orders},
		{name: "order_history", url: endpoints.OrderHistory},
		{name: "tasks", url: endpoints.Tasks},
	}
	failures := make([]error, len(collections))

	var g errgroup.Group
	for i, c := range collections {
		g.Go(func() error {
			rows, err := s.reader.FetchRows(ctx, c.url)
			if err != nil {
				failures[i] = err
				rows = nil
			}
			if rows == nil {
				rows = []model.Row{}
			}
			c.rows = rows
			return nil
		})
	}
	_ = g.Wait()

	var warnings []model.SyncWarning
	for i, err := range failures {
		if err == nil {
			continue
		}
		s.logger.Warn("record store fetch failed",
			slog.String("collection", collections[i].name),
			slog.String("error", err.Error()),
		)
		warnings = append(warnings, model.SyncWarning{
			Kind:    model.WarningFetchFailed,
			Message: fmt.Sprintf("%s: %v", collections[i].name, err),
		})
	}

	snapshot := model.Snapshot{
		Operators: normalize.Operators(collections[0].rows),
		Customers: normalize.Customers(collections[1].rows, collections[2].rows),
		Products:  normalize.Products(collections[3].rows),
		Orders:    normalize.Orders(collections[4].rows, collections[5].rows),
		Tasks:     normalize.Tasks(collections[6].rows),
		SyncedAt:  s.now(),
		Warnings:  warnings,
	}
	normalize.Link(&snapshot)
	return snapshot
}

// Resync fetches with the configured endpoints and publishes the result.
func (s *Synchronizer) Resync(ctx context.Context) (model.Snapshot, error) {
	endpoints, err := s.source.Endpoints(ctx)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("resolve endpoints: %w", err)
	}

	started := s.now()
	fresh := s.Fetch(ctx, endpoints)
	if err := ctx.Err(); err != nil {
		// A cancelled fetch is not published.
		return model.Snapshot{}, fmt.Errorf("resync aborted: %w", err)
	}
	published := s.state.ApplySnapshot(fresh)

	s.logger.Debug("resync completed",
		slog.Int("operators", len(published.Operators)),
		slog.Int("customers", len(published.Customers)),
		slog.Int("orders", len(published.Orders)),
		slog.Int("tasks", len(published.Tasks)),
		slog.Int("pending_overrides", s.state.PendingOverrides()),
		slog.Duration("took", s.now().Sub(started)),
	)
	return published, nil
}
