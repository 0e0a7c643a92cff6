// Package stats derives dashboard figures from a snapshot. Every function is
// pure and recomputes from scratch on each call.
package stats

import (
	"strings"
	"time"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/pkg/sheetdate"
)

// Range selects the time window of a Filter.
type Range string

const (
	RangeAll    Range = "all"
	RangeToday  Range = "today"
	RangeWeek   Range = "week"
	RangeMonth  Range = "month"
	RangeCustom Range = "custom"
)

// ParseRange maps a query value to a Range, falling back to RangeAll.
func ParseRange(value string) Range {
	switch r := Range(strings.ToLower(strings.TrimSpace(value))); r {
	case RangeToday, RangeWeek, RangeMonth, RangeCustom:
		return r
	default:
		return RangeAll
	}
}

// Filter narrows the orders a computation looks at.
type Filter struct {
	Range Range
	// From and To bound RangeCustom; a zero value leaves that side open
	// except To, which defaults to today.
	From time.Time
	To   time.Time
	// OperatorIDs restricts privileged viewers to a set of operators.
	OperatorIDs []string
	Status      model.OrderStatus
	Viewer      model.Operator
}

// window is a closed time interval; zero bounds are open.
type window struct {
	from, to time.Time
}

func (w window) contains(t time.Time) bool {
	if !w.from.IsZero() && t.Before(w.from) {
		return false
	}
	if !w.to.IsZero() && t.After(w.to) {
		return false
	}
	return true
}

func (f Filter) window(now time.Time) (window, bool) {
	switch f.Range {
	case RangeToday:
		return window{from: sheetdate.StartOfDay(now)}, true
	case RangeWeek:
		return window{from: now.AddDate(0, 0, -7)}, true
	case RangeMonth:
		y, m, _ := now.Date()
		return window{from: time.Date(y, m, 1, 0, 0, 0, 0, now.Location())}, true
	case RangeCustom:
		w := window{to: sheetdate.EndOfDay(now)}
		if !f.From.IsZero() {
			w.from = sheetdate.StartOfDay(f.From.In(now.Location()))
		}
		if !f.To.IsZero() {
			w.to = sheetdate.EndOfDay(f.To.In(now.Location()))
		}
		return w, true
	default:
		return window{}, false
	}
}

// ParseDate reads a record-store timestamp in loc.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	return sheetdate.Parse(value, loc)
}

// orderTime returns the creation time of o; unparsable values map to the
// zero time so they only match unbounded windows.
func orderTime(o model.Order, loc *time.Location) time.Time {
	t, ok := sheetdate.Parse(o.CreatedAt, loc)
	if !ok {
		return time.Time{}
	}
	return t
}

func inWindow(o model.Order, f Filter, now time.Time) bool {
	w, bounded := f.window(now)
	if !bounded {
		return true
	}
	t := orderTime(o, now.Location())
	if t.IsZero() {
		return w.from.IsZero()
	}
	return w.contains(t)
}

// visibleTo reports whether viewer may see orders of operatorID under f.
func visibleTo(operatorID string, f Filter) bool {
	if !f.Viewer.Role.Privileged() {
		return operatorID == f.Viewer.ID
	}
	if len(f.OperatorIDs) == 0 {
		return true
	}
	for _, id := range f.OperatorIDs {
		if id == operatorID {
			return true
		}
	}
	return false
}

// filterOrders applies viewer scoping, the status filter and the time window.
func filterOrders(orders []model.Order, f Filter, now time.Time) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if !visibleTo(o.OperatorID, f) {
			continue
		}
		if f.Status != "" && !o.Status.Equal(f.Status) {
			continue
		}
		if !inWindow(o, f, now) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func ownsCustomer(viewer model.Operator, c model.Customer) bool {
	return viewer.Role.Privileged() || c.OperatorID == viewer.ID
}
