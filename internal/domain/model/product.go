package model

const (
	// DefaultProductName is shown for rows without a course name.
	DefaultProductName = "Nomsiz Kurs"
	// DefaultProductCategory groups courses without an explicit category.
	DefaultProductCategory = "Kurs"
)

// Product is a course offered by the school.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Duration     string  `json:"duration"`
	MonthlyPrice float64 `json:"monthlyPrice"`
	TotalPrice   float64 `json:"totalPrice"`
	Description  string  `json:"description,omitempty"`
	Video        string  `json:"video,omitempty"`
	Document     string  `json:"document,omitempty"`
	Category     string  `json:"category"`
}

// UnitPrice is what an order records as the periodic payment.
func (p Product) UnitPrice() float64 {
	if p.MonthlyPrice > 0 {
		return p.MonthlyPrice
	}
	return p.TotalPrice
}
