package model

import "time"

// SyncWarning reports a condition found while applying a fresh snapshot.
type SyncWarning struct {
	Kind    string `json:"kind"`
	OrderID string `json:"orderId,omitempty"`
	Message string `json:"message"`
}

// Warning kinds.
const (
	WarningOverrideExpired = "override_expired"
	WarningFetchFailed     = "fetch_failed"
)

// Snapshot is the complete in-memory view of the record store.
type Snapshot struct {
	Operators []Operator     `json:"operators"`
	Customers []Customer     `json:"customers"`
	Products  []Product      `json:"products"`
	Orders    []Order        `json:"orders"`
	Tasks     []CustomerTask `json:"tasks"`
	SyncedAt  time.Time      `json:"syncedAt"`
	Warnings  []SyncWarning  `json:"warnings,omitempty"`
}

// Clone returns a deep copy safe to hand out to readers.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Operators: cloneSlice(s.Operators),
		Customers: cloneSlice(s.Customers),
		Products:  cloneSlice(s.Products),
		Orders:    cloneSlice(s.Orders),
		Tasks:     cloneSlice(s.Tasks),
		Warnings:  cloneSlice(s.Warnings),
		SyncedAt:  s.SyncedAt,
	}
	for i := range out.Customers {
		out.Customers[i].StageHistory = cloneSlice(out.Customers[i].StageHistory)
	}
	for i := range out.Orders {
		out.Orders[i].History = cloneSlice(out.Orders[i].History)
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}

// FindOperator looks up an operator by id.
func (s Snapshot) FindOperator(id string) (Operator, bool) {
	for _, operator := range s.Operators {
		if operator.ID == id {
			return operator, true
		}
	}
	return Operator{}, false
}

// FindCustomer looks up a customer by id.
func (s Snapshot) FindCustomer(id string) (Customer, bool) {
	for _, customer := range s.Customers {
		if customer.ID == id {
			return customer, true
		}
	}
	return Customer{}, false
}

// FindProduct looks up a product by id.
func (s Snapshot) FindProduct(id string) (Product, bool) {
	for _, product := range s.Products {
		if product.ID == id {
			return product, true
		}
	}
	return Product{}, false
}

// FindOrder looks up an order by id.
func (s Snapshot) FindOrder(id string) (Order, bool) {
	for _, order := range s.Orders {
		if order.ID == id {
			return order, true
		}
	}
	return Order{}, false
}

// FindTask looks up a task by id.
func (s Snapshot) FindTask(id string) (CustomerTask, bool) {
	for _, task := range s.Tasks {
		if task.ID == id {
			return task, true
		}
	}
	return CustomerTask{}, false
}
