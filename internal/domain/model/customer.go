package model

import "strings"

const (
	// StageNew is the funnel stage assigned to fresh leads.
	StageNew = "Yangi"
	// StageRejected marks a lost lead; it requires a rejection reason.
	StageRejected = "Otkaz"
	// UnassignedOperatorID is used by the backend for customers without an operator.
	UnassignedOperatorID = "0"
)

// DefaultStages is the funnel used until admins edit it.
var DefaultStages = []string{
	StageNew,
	"Aloqa o'rnatildi",
	"Ofisga keldi",
	"Probniy darsga kirdi",
	"Qaror bosqichi",
	"To‘lov qildi",
	StageRejected,
}

// IsRejectionStage reports whether stage denotes a lost lead.
func IsRejectionStage(stage string) bool {
	return strings.EqualFold(strings.TrimSpace(stage), StageRejected)
}

// Customer is a lead or student of the school.
type Customer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Note         string `json:"note"`
	Stage        string `json:"stage"`
	OperatorID   string `json:"operatorId"`
	OperatorName string `json:"operatorName"`
	SavedAt      string `json:"savedAt,omitempty"`

	ExtraPhone       string `json:"extraPhone,omitempty"`
	Age              string `json:"age,omitempty"`
	SocialURL        string `json:"socialUrl,omitempty"`
	LeadSource       string `json:"leadSource,omitempty"`
	InterestedCourse string `json:"interestedCourse,omitempty"`
	Goal             string `json:"goal,omitempty"`
	EducationType    string `json:"educationType,omitempty"`
	BusinessType     string `json:"businessType,omitempty"`
	RejectionReason  string `json:"rejectionReason,omitempty"`

	// StageHistory holds the status-log entries in append order.
	StageHistory []Revision[string] `json:"stageHistory,omitempty"`
}

// Assigned reports whether the customer belongs to an operator.
func (c Customer) Assigned() bool {
	return c.OperatorID != "" && c.OperatorID != UnassignedOperatorID
}

// FullName joins name and surname.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.Name + " " + c.Surname)
}
