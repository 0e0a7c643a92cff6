package dto

// OrderRequest submits a new order.
type OrderRequest struct {
	CustomerID string `json:"customerId"`
	ProductID  string `json:"productId"`
	Note       string `json:"note"`
	StartDate  string `json:"startDate"`
}

// OrderStatusRequest changes the status of one or more orders.
type OrderStatusRequest struct {
	OrderIDs []string `json:"orderIds"`
	Status   string   `json:"status"`
	Note     string   `json:"note"`
}
