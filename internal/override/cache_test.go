package override

import (
	"sync"
	"testing"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

func statusCache(maxCycles int) *Cache[model.OrderStatus] {
	return New(maxCycles, model.OrderStatus.Equal)
}

func TestReconcileMatchedClears(t *testing.T) {
	c := statusCache(5)
	c.Set("1", model.OrderStatusContracted)

	got, outcome := c.Reconcile("1", "shartnoma qildi")
	if outcome != Matched || got != "shartnoma qildi" {
		t.Fatalf("expected match, got %v / %q", outcome, got)
	}
	if c.Len() != 0 {
		t.Fatalf("expected override to be cleared")
	}
}

func TestReconcileMismatchMasks(t *testing.T) {
	c := statusCache(5)
	c.Set("1", model.OrderStatusContracted)

	got, outcome := c.Reconcile("1", model.OrderStatusPending)
	if outcome != Masked || got != model.OrderStatusContracted {
		t.Fatalf("expected asserted value to win, got %v / %q", outcome, got)
	}
	if _, ok := c.Get("1"); !ok {
		t.Fatalf("expected override to remain set")
	}
}

func TestReconcileWithoutOverride(t *testing.T) {
	c := statusCache(5)
	got, outcome := c.Reconcile("7", model.OrderStatusPending)
	if outcome != None || got != model.OrderStatusPending {
		t.Fatalf("expected passthrough, got %v / %q", outcome, got)
	}
}

func TestReconcileExpiresAfterMaxCycles(t *testing.T) {
	c := statusCache(2)
	c.Set("1", model.OrderStatusCancelled)

	for i := 0; i < 2; i++ {
		if _, outcome := c.Reconcile("1", model.OrderStatusPending); outcome != Masked {
			t.Fatalf("cycle %d: expected masked, got %v", i, outcome)
		}
	}
	got, outcome := c.Reconcile("1", model.OrderStatusPending)
	if outcome != Expired || got != model.OrderStatusPending {
		t.Fatalf("expected expiry with fresh value, got %v / %q", outcome, got)
	}
	if c.Len() != 0 {
		t.Fatalf("expected expired override to be dropped")
	}
}

func TestZeroMaxCyclesNeverExpires(t *testing.T) {
	c := statusCache(0)
	c.Set("1", model.OrderStatusCancelled)
	for i := 0; i < 50; i++ {
		if _, outcome := c.Reconcile("1", model.OrderStatusPending); outcome != Masked {
			t.Fatalf("cycle %d: expected masked, got %v", i, outcome)
		}
	}
}

func TestSweepAgesUnseenEntries(t *testing.T) {
	c := statusCache(1)
	c.Set("seen", model.OrderStatusCancelled)
	c.Set("gone", model.OrderStatusCancelled)

	seen := map[string]struct{}{"seen": {}}
	if expired := c.Sweep(seen); len(expired) != 0 {
		t.Fatalf("expected no expiry on first sweep, got %v", expired)
	}
	expired := c.Sweep(seen)
	if len(expired) != 1 || expired[0] != "gone" {
		t.Fatalf("expected gone to expire, got %v", expired)
	}
	if _, ok := c.Get("seen"); !ok {
		t.Fatalf("expected seen entry to stay")
	}
}

func TestSetReplacesAndResetsCycles(t *testing.T) {
	c := statusCache(1)
	c.Set("1", model.OrderStatusCancelled)
	c.Reconcile("1", model.OrderStatusPending)
	c.Set("1", model.OrderStatusContracted)

	if _, outcome := c.Reconcile("1", model.OrderStatusPending); outcome != Masked {
		t.Fatalf("expected fresh cycle budget after Set, got %v", outcome)
	}
	c.Clear("1")
	if c.Len() != 0 || len(c.IDs()) != 0 {
		t.Fatalf("expected cleared cache")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := statusCache(3)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			c.Set(id, model.OrderStatusContracted)
			c.Reconcile(id, model.OrderStatusContracted)
		}(i)
	}
	wg.Wait()
	if c.Len() != 0 {
		t.Fatalf("expected all overrides to match, got %d", c.Len())
	}
}

func TestOutcomeString(t *testing.T) {
	if Masked.String() != "masked" || None.String() != "none" {
		t.Fatalf("unexpected outcome names")
	}
}
