package model

import "strings"

// OrderStatus describes the contract lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Kutilmoqda"
	OrderStatusContracted OrderStatus = "Shartnoma qildi"
	OrderStatusCancelled  OrderStatus = "Bekor qilindi"

	// OrderStatusUnknown is recorded for history rows without a status.
	OrderStatusUnknown OrderStatus = "Noma'lum"
)

// OrderStatuses lists statuses an operator may set.
var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusContracted, OrderStatusCancelled}

// Key returns the comparison form of the status.
func (s OrderStatus) Key() string {
	if strings.TrimSpace(string(s)) == "" {
		return strings.ToUpper(string(OrderStatusPending))
	}
	return strings.ToUpper(strings.TrimSpace(string(s)))
}

// Equal compares statuses ignoring case and surrounding spaces.
func (s OrderStatus) Equal(other OrderStatus) bool {
	return s.Key() == other.Key()
}

// Terminal reports whether no further follow-up is expected.
func (s OrderStatus) Terminal() bool {
	return s.Equal(OrderStatusContracted) || s.Equal(OrderStatusCancelled)
}

// ParseOrderStatus resolves a label to one of OrderStatuses.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	for _, status := range OrderStatuses {
		if status.Equal(OrderStatus(value)) {
			return status, true
		}
	}
	return "", false
}

// OrderHistoryEntry is one row of the append-only order history.
type OrderHistoryEntry struct {
	Date       string      `json:"date"`
	Status     OrderStatus `json:"status"`
	OperatorID string      `json:"operatorId"`
	Note       string      `json:"note,omitempty"`
}

// Order is a single course purchase.
type Order struct {
	ID              string              `json:"id"`
	CreatedAt       string              `json:"createdAt"`
	OperatorID      string              `json:"operatorId"`
	CustomerID      string              `json:"customerId"`
	CustomerName    string              `json:"customerName"`
	CustomerSurname string              `json:"customerSurname"`
	CustomerPhone   string              `json:"customerPhone"`
	ProductID       string              `json:"productId"`
	ProductName     string              `json:"productName"`
	ProductDuration string              `json:"productDuration"`
	UnitPrice       float64             `json:"unitPrice"`
	Quantity        int                 `json:"quantity"`
	TotalAmount     float64             `json:"totalAmount"`
	Status          OrderStatus         `json:"status"`
	Note            string              `json:"note"`
	StartDate       string              `json:"startDate"`
	History         []OrderHistoryEntry `json:"history"`
}

// OrderDraft is what an operator submits for a new order.
type OrderDraft struct {
	CustomerID string
	ProductID  string
	Note       string
	StartDate  string
}
