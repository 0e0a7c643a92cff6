package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

// DefaultStatusNote is recorded when a status change carries no note.
const DefaultStatusNote = "Status o'zgardi"

// OrderUseCase submits orders and logs their status changes.
type OrderUseCase struct {
	gw *Gateway
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(gw *Gateway) *OrderUseCase {
	return &OrderUseCase{gw: gw}
}

// Submit records a single-course order in the Pending status.
func (u *OrderUseCase) Submit(ctx context.Context, actor model.Operator, draft model.OrderDraft) (model.Order, error) {
	startDate := strings.TrimSpace(draft.StartDate)
	if startDate == "" {
		return model.Order{}, domainErrors.ErrStartDateRequired
	}

	snapshot := u.gw.state.Snapshot()
	customer, ok := snapshot.FindCustomer(draft.CustomerID)
	if !ok {
		return model.Order{}, fmt.Errorf("customer %s: %w", draft.CustomerID, domainErrors.ErrNotFound)
	}
	if !actor.Role.Privileged() && customer.Assigned() && customer.OperatorID != actor.ID {
		return model.Order{}, domainErrors.ErrForbidden
	}
	product, ok := snapshot.FindProduct(draft.ProductID)
	if !ok {
		return model.Order{}, fmt.Errorf("product %s: %w", draft.ProductID, domainErrors.ErrNotFound)
	}

	ids := make([]string, 0, len(snapshot.Orders))
	for _, o := range snapshot.Orders {
		ids = append(ids, o.ID)
	}

	duration := product.Duration
	if duration == "" {
		duration = "kurs"
	}

	order := model.Order{
		ID:              NextID(ids),
		CreatedAt:       u.gw.timestamp(),
		OperatorID:      actor.ID,
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerSurname: customer.Surname,
		CustomerPhone:   customer.Phone,
		ProductID:       product.ID,
		ProductName:     product.Name,
		ProductDuration: duration,
		UnitPrice:       product.UnitPrice(),
		Quantity:        1,
		TotalAmount:     product.TotalPrice,
		Status:          model.OrderStatusPending,
		Note:            strings.TrimSpace(draft.Note),
		StartDate:       startDate,
		History:         []model.OrderHistoryEntry{},
	}

	payload := []map[string]any{orderRow(order)}
	if err := u.gw.write(ctx, func(e model.Endpoints) string { return e.Orders }, "order", payload); err != nil {
		return model.Order{}, err
	}

	u.gw.state.ApplyMutation(func(s *model.Snapshot) {
		s.Orders = append(s.Orders, order)
	})
	u.gw.resyncAfter(u.gw.delays.Task)
	return order, nil
}

// ChangeStatus logs one history row per order in a single write, applies the
// new status locally and asserts it against stale reads until the store catches up.
func (u *OrderUseCase) ChangeStatus(ctx context.Context, actor model.Operator, orderIDs []string, status model.OrderStatus, note string) ([]model.Order, error) {
	target, ok := model.ParseOrderStatus(string(status))
	if !ok {
		return nil, fmt.Errorf("status %q: %w", status, domainErrors.ErrInvalidOrderStatus)
	}
	if len(orderIDs) == 0 {
		return nil, fmt.Errorf("no orders: %w", domainErrors.ErrNotFound)
	}

	snapshot := u.gw.state.Snapshot()
	orders := make([]model.Order, 0, len(orderIDs))
	seen := make(map[string]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		order, ok := snapshot.FindOrder(id)
		if !ok {
			return nil, fmt.Errorf("order %s: %w", id, domainErrors.ErrNotFound)
		}
		if !actor.Role.Privileged() && order.OperatorID != actor.ID {
			return nil, domainErrors.ErrForbidden
		}
		orders = append(orders, order)
	}

	editedAt := u.gw.timestamp()
	note = strings.TrimSpace(note)
	changes := make(map[string]model.OrderHistoryEntry, len(orders))
	payload := make([]map[string]any, 0, len(orders))
	for _, order := range orders {
		entryNote := note
		if entryNote == "" {
			entryNote = order.Note
		}
		if entryNote == "" {
			entryNote = DefaultStatusNote
		}
		entry := model.OrderHistoryEntry{Date: editedAt, Status: target, OperatorID: order.OperatorID, Note: entryNote}
		changes[order.ID] = entry
		payload = append(payload, historyRow(order, entry))
	}

	if err := u.gw.write(ctx, func(e model.Endpoints) string { return e.OrderHistory }, "order history", payload); err != nil {
		return nil, err
	}

	applied := u.gw.state.AssertOrderStatus(changes)
	u.gw.resyncAfter(u.gw.delays.Status)

	updated := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		if o, ok := applied.FindOrder(order.ID); ok {
			updated = append(updated, o)
		}
	}
	return updated, nil
}

func orderRow(o model.Order) map[string]any {
	return map[string]any{
		"buyurtma id":           o.ID,
		"mijoz id":              o.CustomerID,
		"mijoz ism":             o.CustomerName,
		"mijoz familya":         o.CustomerSurname,
		"mijoz tel nomer":       withQuote(o.CustomerPhone),
		"operator id":           o.OperatorID,
		"saqlash vaqti":         o.CreatedAt,
		"buyurtma holati":       string(o.Status),
		"tovar id":              o.ProductID,
		"kurs turi":             o.ProductName,
		"davomiyligi":           o.ProductDuration,
		"oyli to'lov":           o.UnitPrice,
		"jami to'lov":           o.TotalAmount,
		"kursni boshlash vaqti": o.StartDate,
		"izoh":                  o.Note,
	}
}

func historyRow(o model.Order, entry model.OrderHistoryEntry) map[string]any {
	row := orderRow(o)
	row["buyurtma holati"] = string(entry.Status)
	row["taxrirlangan vaqti"] = entry.Date
	row["izoh"] = entry.Note
	return row
}
