package model

import "strings"

// TaskStatus describes follow-up task state.
type TaskStatus string

const (
	TaskStatusNew       TaskStatus = "Yangi"
	TaskStatusDone      TaskStatus = "Bajarildi"
	TaskStatusCancelled TaskStatus = "Bekor qilindi"

	// TaskStatusOverdue is never stored; it is derived for New tasks past their deadline.
	TaskStatusOverdue TaskStatus = "Bajarilmayapti"
)

// ParseTaskStatus resolves a stored label, accepting only persistable statuses.
func ParseTaskStatus(value string) (TaskStatus, bool) {
	for _, status := range []TaskStatus{TaskStatusNew, TaskStatusDone, TaskStatusCancelled} {
		if strings.EqualFold(strings.TrimSpace(value), string(status)) {
			return status, true
		}
	}
	return "", false
}

// CustomerTask is a follow-up scheduled against a customer.
type CustomerTask struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customerId"`
	CreatedAt    string     `json:"createdAt"`
	OperatorID   string     `json:"operatorId"`
	OperatorName string     `json:"operatorName"`
	CreatorID    string     `json:"creatorId"`
	CreatorName  string     `json:"creatorName"`
	Text         string     `json:"text"`
	Deadline     string     `json:"deadline"`
	Status       TaskStatus `json:"status"`
}
