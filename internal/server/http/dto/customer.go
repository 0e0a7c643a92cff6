package dto

import "github.com/polkiloo/mentorcrm/internal/domain/model"

// CustomerRequest holds the editable customer fields.
type CustomerRequest struct {
	Name             string `json:"name"`
	Surname          string `json:"surname"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	Note             string `json:"note"`
	Stage            string `json:"stage"`
	OperatorID       string `json:"operatorId"`
	ExtraPhone       string `json:"extraPhone"`
	Age              string `json:"age"`
	SocialURL        string `json:"socialUrl"`
	LeadSource       string `json:"leadSource"`
	InterestedCourse string `json:"interestedCourse"`
	Goal             string `json:"goal"`
	EducationType    string `json:"educationType"`
	BusinessType     string `json:"businessType"`
	RejectionReason  string `json:"rejectionReason"`
}

// Customer converts the request into a customer with id.
func (r CustomerRequest) Customer(id string) model.Customer {
	return model.Customer{
		ID:               id,
		Name:             r.Name,
		Surname:          r.Surname,
		Phone:            r.Phone,
		Address:          r.Address,
		Note:             r.Note,
		Stage:            r.Stage,
		OperatorID:       r.OperatorID,
		ExtraPhone:       r.ExtraPhone,
		Age:              r.Age,
		SocialURL:        r.SocialURL,
		LeadSource:       r.LeadSource,
		InterestedCourse: r.InterestedCourse,
		Goal:             r.Goal,
		EducationType:    r.EducationType,
		BusinessType:     r.BusinessType,
		RejectionReason:  r.RejectionReason,
	}
}

// BulkRequest lists customers to hand to or take from an operator.
type BulkRequest struct {
	OperatorID  string   `json:"operatorId"`
	CustomerIDs []string `json:"customerIds"`
}

// BulkItem is the outcome for one customer.
type BulkItem struct {
	ID    string `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// BulkResponse lists per-customer outcomes in request order.
type BulkResponse struct {
	Items  []BulkItem `json:"items"`
	Failed []string   `json:"failed"`
}
