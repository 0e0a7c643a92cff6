package state

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/override"
)

func newTestState(maxCycles int) *State {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return New(override.New(maxCycles, model.OrderStatus.Equal), logger)
}

func orderSnapshot(status model.OrderStatus) model.Snapshot {
	return model.Snapshot{Orders: []model.Order{{ID: "O", Status: status}}}
}

func TestNewStateHasEmptyCollections(t *testing.T) {
	s := newTestState(5)
	snap := s.Snapshot()
	if snap.Operators == nil || snap.Customers == nil || snap.Orders == nil || snap.Tasks == nil || snap.Products == nil {
		t.Fatalf("expected non-nil empty collections")
	}
}

func TestOverrideSurvivesStaleResync(t *testing.T) {
	s := newTestState(5)
	s.ApplySnapshot(orderSnapshot(model.OrderStatusPending))

	s.AssertOrderStatus(map[string]model.OrderHistoryEntry{"O": {Status: model.OrderStatusContracted, Note: "Status o'zgardi"}})
	if got := s.Snapshot().Orders[0]; got.Status != model.OrderStatusContracted || len(got.History) != 1 {
		t.Fatalf("expected optimistic update, got %+v", got)
	}

	published := s.ApplySnapshot(orderSnapshot(model.OrderStatusPending))
	if published.Orders[0].Status != model.OrderStatusContracted {
		t.Fatalf("expected override to win, got %q", published.Orders[0].Status)
	}
	if s.PendingOverrides() != 1 {
		t.Fatalf("expected override to remain set")
	}

	published = s.ApplySnapshot(orderSnapshot(model.OrderStatusContracted))
	if published.Orders[0].Status != model.OrderStatusContracted || s.PendingOverrides() != 0 {
		t.Fatalf("expected override to clear once backend caught up")
	}
}

func TestExpiredOverrideRaisesWarning(t *testing.T) {
	s := newTestState(1)
	var warnings []model.SyncWarning
	s.Subscribe(func(e Event) {
		if e.Kind == EventSyncWarning {
			warnings = append(warnings, e.Warnings...)
		}
	})

	s.AssertOrderStatus(map[string]model.OrderHistoryEntry{"O": {Status: model.OrderStatusCancelled}})
	s.ApplySnapshot(orderSnapshot(model.OrderStatusPending))
	published := s.ApplySnapshot(orderSnapshot(model.OrderStatusPending))

	if published.Orders[0].Status != model.OrderStatusPending {
		t.Fatalf("expected fresh value after expiry, got %q", published.Orders[0].Status)
	}
	if len(warnings) != 1 || warnings[0].OrderID != "O" || warnings[0].Kind != model.WarningOverrideExpired {
		t.Fatalf("expected one expiry warning, got %+v", warnings)
	}
	if len(published.Warnings) != 1 {
		t.Fatalf("expected warning on snapshot, got %+v", published.Warnings)
	}
}

func TestApplyMutationPublishesAndNotifies(t *testing.T) {
	s := newTestState(5)
	var events int
	unsubscribe := s.Subscribe(func(e Event) {
		if e.Kind == EventSnapshotUpdated && e.Snapshot != nil {
			events++
		}
	})

	s.ApplyMutation(func(snap *model.Snapshot) {
		snap.Customers = append(snap.Customers, model.Customer{ID: "1"})
	})
	unsubscribe()
	s.ApplyMutation(func(snap *model.Snapshot) {})

	if events != 1 {
		t.Fatalf("expected one event before unsubscribe, got %d", events)
	}
	if _, ok := s.Snapshot().FindCustomer("1"); !ok {
		t.Fatalf("expected mutation to be applied")
	}
}

func TestSnapshotReadersGetCopies(t *testing.T) {
	s := newTestState(5)
	s.ApplySnapshot(orderSnapshot(model.OrderStatusPending))

	snap := s.Snapshot()
	snap.Orders[0].Status = model.OrderStatusCancelled

	if s.Snapshot().Orders[0].Status != model.OrderStatusPending {
		t.Fatalf("expected state to be isolated from reader mutations")
	}
}

func TestConcurrentTransitions(t *testing.T) {
	s := newTestState(5)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.ApplyMutation(func(snap *model.Snapshot) {
				snap.Tasks = append(snap.Tasks, model.CustomerTask{})
			})
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	if got := len(s.Snapshot().Tasks); got != 50 {
		t.Fatalf("expected 50 tasks, got %d", got)
	}
}

func TestAssertRacingResyncKeepsAssertedStatus(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := newTestState(5)
		s.ApplySnapshot(orderSnapshot(model.OrderStatusPending))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.ApplySnapshot(orderSnapshot(model.OrderStatusPending))
		}()
		go func() {
			defer wg.Done()
			s.AssertOrderStatus(map[string]model.OrderHistoryEntry{"O": {Status: model.OrderStatusContracted}})
		}()
		wg.Wait()

		if got := s.Snapshot().Orders[0].Status; got != model.OrderStatusContracted {
			t.Fatalf("iteration %d: expected %q, got %q", i, model.OrderStatusContracted, got)
		}
	}
}
