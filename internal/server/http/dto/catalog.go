package dto

import "github.com/polkiloo/mentorcrm/internal/domain/model"

// ProductRequest describes a new course.
type ProductRequest struct {
	Name         string  `json:"name"`
	Duration     string  `json:"duration"`
	MonthlyPrice float64 `json:"monthlyPrice"`
	TotalPrice   float64 `json:"totalPrice"`
	Description  string  `json:"description"`
	Video        string  `json:"video"`
	Document     string  `json:"document"`
	Category     string  `json:"category"`
}

// Product converts the request into a product.
func (r ProductRequest) Product() model.Product {
	return model.Product{
		Name:         r.Name,
		Duration:     r.Duration,
		MonthlyPrice: r.MonthlyPrice,
		TotalPrice:   r.TotalPrice,
		Description:  r.Description,
		Video:        r.Video,
		Document:     r.Document,
		Category:     r.Category,
	}
}

// OperatorRequest describes a new staff account.
type OperatorRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// Operator converts the request into an operator.
func (r OperatorRequest) Operator() model.Operator {
	return model.Operator{
		Email:    r.Email,
		Name:     r.Name,
		Surname:  r.Surname,
		Phone:    r.Phone,
		Role:     model.Role(r.Role),
		Password: r.Password,
		Address:  r.Address,
	}
}
