package model

// Row is a flat record as returned by the record store.
type Row map[string]any

// Endpoints holds the seven record store URLs.
type Endpoints struct {
	Operators    string `json:"operators"`
	Customers    string `json:"customers"`
	StatusLog    string `json:"statusLog"`
	Products     string `json:"products"`
	Orders       string `json:"orders"`
	OrderHistory string `json:"orderHistory"`
	Tasks        string `json:"tasks"`
}

// Merge overrides fields of e with the non-empty fields of other.
func (e Endpoints) Merge(other Endpoints) Endpoints {
	pick := func(current, next string) string {
		if next != "" {
			return next
		}
		return current
	}
	return Endpoints{
		Operators:    pick(e.Operators, other.Operators),
		Customers:    pick(e.Customers, other.Customers),
		StatusLog:    pick(e.StatusLog, other.StatusLog),
		Products:     pick(e.Products, other.Products),
		Orders:       pick(e.Orders, other.Orders),
		OrderHistory: pick(e.OrderHistory, other.OrderHistory),
		Tasks:        pick(e.Tasks, other.Tasks),
	}
}
