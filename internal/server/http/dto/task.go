package dto

import "github.com/polkiloo/mentorcrm/internal/domain/model"

// TaskRequest creates a task when ID is empty and updates it otherwise.
type TaskRequest struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Text       string `json:"text"`
	Deadline   string `json:"deadline"`
	Status     string `json:"status"`
}

// Task converts the request into a task.
func (r TaskRequest) Task() model.CustomerTask {
	return model.CustomerTask{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Text:       r.Text,
		Deadline:   r.Deadline,
		Status:     model.TaskStatus(r.Status),
	}
}
