package stats

import (
	"sort"
	"time"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/pkg/sheetdate"
)

// urgentOrderDays is how far ahead a planned start date counts as urgent.
const urgentOrderDays = 2

// OperatorCount is the number of inactive customers held by one operator.
type OperatorCount struct {
	OperatorID string `json:"operatorId"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

// Inactive groups customers that never placed an order.
type Inactive struct {
	Total      int                         `json:"total"`
	ByOperator map[string][]model.Customer `json:"byOperator"`
	Counts     []OperatorCount             `json:"counts"`
}

// InactiveCustomers finds customers without orders. Operators only see
// their own customers; unassigned ones are grouped under "0".
func InactiveCustomers(snapshot model.Snapshot, viewer model.Operator) Inactive {
	ordered := make(map[string]struct{}, len(snapshot.Orders))
	for _, o := range snapshot.Orders {
		ordered[o.CustomerID] = struct{}{}
	}

	res := Inactive{ByOperator: make(map[string][]model.Customer), Counts: []OperatorCount{}}
	for _, c := range snapshot.Customers {
		if _, ok := ordered[c.ID]; ok {
			continue
		}
		if !ownsCustomer(viewer, c) {
			continue
		}
		key := c.OperatorID
		if !c.Assigned() {
			key = model.UnassignedOperatorID
		}
		res.ByOperator[key] = append(res.ByOperator[key], c)
		res.Total++
	}

	for _, op := range snapshot.Operators {
		if !viewer.Role.Privileged() && op.ID != viewer.ID {
			continue
		}
		res.Counts = append(res.Counts, OperatorCount{
			OperatorID: op.ID,
			Name:       op.FullName(),
			Count:      len(res.ByOperator[op.ID]),
		})
	}
	sort.SliceStable(res.Counts, func(i, j int) bool { return res.Counts[i].Count > res.Counts[j].Count })
	return res
}

// UrgentOrders lists open orders starting within two days, including ones
// whose start date already passed, earliest first.
func UrgentOrders(snapshot model.Snapshot, viewer model.Operator, now time.Time) []model.Order {
	limit := sheetdate.EndOfDay(now.AddDate(0, 0, urgentOrderDays))

	type dated struct {
		order model.Order
		start time.Time
	}
	var found []dated
	for _, o := range snapshot.Orders {
		if !viewer.Role.Privileged() && o.OperatorID != viewer.ID {
			continue
		}
		if o.Status.Terminal() {
			continue
		}
		start, ok := sheetdate.Parse(o.StartDate, now.Location())
		if !ok || start.After(limit) {
			continue
		}
		found = append(found, dated{order: o, start: start})
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].start.Before(found[j].start) })

	out := make([]model.Order, 0, len(found))
	for _, d := range found {
		out = append(out, d.order)
	}
	return out
}
