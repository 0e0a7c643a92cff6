// Package state owns the in-memory snapshot and its optimistic overrides.
package state

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/override"
)

// Event kinds published to subscribers.
const (
	EventSnapshotUpdated = "snapshot.updated"
	EventSyncWarning     = "sync.warning"
)

// Event describes a state transition.
type Event struct {
	Kind     string              `json:"type"`
	Snapshot *model.Snapshot     `json:"snapshot,omitempty"`
	Warnings []model.SyncWarning `json:"warnings,omitempty"`
}

// Listener receives events after a transition completed.
type Listener func(Event)

// State is the single owner of the snapshot. Every transition replaces the
// published snapshot in one step under the write lock.
type State struct {
	mu        sync.RWMutex
	snapshot  model.Snapshot
	overrides *override.Cache[model.OrderStatus]
	logger    *slog.Logger

	listenersMu sync.Mutex
	nextID      int
	listeners   map[int]Listener
}

// New creates an empty state.
func New(overrides *override.Cache[model.OrderStatus], logger *slog.Logger) *State {
	return &State{
		snapshot: model.Snapshot{
			Operators: []model.Operator{},
			Customers: []model.Customer{},
			Products:  []model.Product{},
			Orders:    []model.Order{},
			Tasks:     []model.CustomerTask{},
		},
		overrides: overrides,
		logger:    logger,
		listeners: make(map[int]Listener),
	}
}

// Snapshot returns a deep copy of the current snapshot.
func (s *State) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// ApplySnapshot publishes a freshly fetched snapshot with active overrides
// patched over order statuses, and returns what was published.
func (s *State) ApplySnapshot(fresh model.Snapshot) model.Snapshot {
	next := fresh.Clone()
	warnings := append([]model.SyncWarning(nil), next.Warnings...)

	// Reconcile and publish happen under one lock with AssertOrderStatus.
	s.mu.Lock()

	seen := make(map[string]struct{}, len(next.Orders))
	for i := range next.Orders {
		order := &next.Orders[i]
		seen[order.ID] = struct{}{}

		status, outcome := s.overrides.Reconcile(order.ID, order.Status)
		switch outcome {
		case override.Masked:
			s.logger.Debug("order status override kept",
				slog.String("order_id", order.ID),
				slog.String("fetched", string(order.Status)),
				slog.String("asserted", string(status)),
			)
			order.Status = status
		case override.Expired:
			warnings = append(warnings, expiryWarning(order.ID, order.Status))
		}
	}
	for _, id := range s.overrides.Sweep(seen) {
		warnings = append(warnings, expiryWarning(id, ""))
	}
	for _, w := range warnings {
		if w.Kind == model.WarningOverrideExpired {
			s.logger.Warn("order status override expired", slog.String("order_id", w.OrderID), slog.String("message", w.Message))
		}
	}
	next.Warnings = warnings
	s.snapshot = next
	published := s.snapshot.Clone()
	s.mu.Unlock()

	s.emit(Event{Kind: EventSnapshotUpdated, Snapshot: &published})
	if len(warnings) > 0 {
		s.emit(Event{Kind: EventSyncWarning, Warnings: warnings})
	}
	return published
}

// ApplyMutation runs fn against a working copy and publishes the result.
func (s *State) ApplyMutation(fn func(*model.Snapshot)) model.Snapshot {
	s.mu.Lock()
	working := s.snapshot.Clone()
	fn(&working)
	s.snapshot = working
	published := s.snapshot.Clone()
	s.mu.Unlock()

	s.emit(Event{Kind: EventSnapshotUpdated, Snapshot: &published})
	return published
}

// AssertOrderStatus applies status changes locally and registers an override
// per order so stale fetches do not revert them. Keys are order ids.
func (s *State) AssertOrderStatus(changes map[string]model.OrderHistoryEntry) model.Snapshot {
	s.mu.Lock()
	for id, entry := range changes {
		s.overrides.Set(id, entry.Status)
	}
	working := s.snapshot.Clone()
	for i := range working.Orders {
		order := &working.Orders[i]
		entry, ok := changes[order.ID]
		if !ok {
			continue
		}
		order.Status = entry.Status
		order.Note = entry.Note
		order.History = append(order.History, entry)
	}
	s.snapshot = working
	published := s.snapshot.Clone()
	s.mu.Unlock()

	s.emit(Event{Kind: EventSnapshotUpdated, Snapshot: &published})
	return published
}

// PendingOverrides reports how many order statuses are still asserted locally.
func (s *State) PendingOverrides() int {
	return s.overrides.Len()
}

// Subscribe registers l and returns a function removing it.
func (s *State) Subscribe(l Listener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *State) emit(event Event) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}

func expiryWarning(orderID string, fetched model.OrderStatus) model.SyncWarning {
	msg := "status change was not confirmed by the record store"
	if fetched != "" {
		msg = fmt.Sprintf("%s; keeping %q", msg, fetched)
	}
	return model.SyncWarning{Kind: model.WarningOverrideExpired, OrderID: orderID, Message: msg}
}
