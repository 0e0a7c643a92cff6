package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/pkg/sheetdate"
)

// TaskUseCase creates and updates customer follow-up tasks.
type TaskUseCase struct {
	gw *Gateway
}

// NewTaskUseCase constructs TaskUseCase.
func NewTaskUseCase(gw *Gateway) *TaskUseCase {
	return &TaskUseCase{gw: gw}
}

// Save creates the task when it has no id, otherwise updates the existing one.
// The actor becomes the task's last editor either way.
func (u *TaskUseCase) Save(ctx context.Context, actor model.Operator, task model.CustomerTask) (model.CustomerTask, error) {
	snapshot := u.gw.state.Snapshot()

	var (
		saved model.CustomerTask
		err   error
	)
	if strings.TrimSpace(task.ID) == "" {
		saved, err = u.prepareCreate(snapshot, actor, task)
	} else {
		saved, err = u.prepareUpdate(snapshot, actor, task)
	}
	if err != nil {
		return model.CustomerTask{}, err
	}

	if err := u.gw.write(ctx, func(e model.Endpoints) string { return e.Tasks }, "task", taskRow(saved)); err != nil {
		return model.CustomerTask{}, err
	}

	u.gw.state.ApplyMutation(func(s *model.Snapshot) {
		for i := range s.Tasks {
			if s.Tasks[i].ID == saved.ID {
				s.Tasks[i] = saved
				return
			}
		}
		s.Tasks = append(s.Tasks, saved)
	})
	u.gw.resyncAfter(u.gw.delays.Task)
	return saved, nil
}

func (u *TaskUseCase) prepareCreate(snapshot model.Snapshot, actor model.Operator, task model.CustomerTask) (model.CustomerTask, error) {
	text := strings.TrimSpace(task.Text)
	if text == "" {
		return model.CustomerTask{}, domainErrors.ErrTaskTextRequired
	}
	deadline, err := u.normalizeDeadline(task.Deadline)
	if err != nil {
		return model.CustomerTask{}, err
	}

	customer, ok := snapshot.FindCustomer(task.CustomerID)
	if !ok {
		return model.CustomerTask{}, fmt.Errorf("customer %s: %w", task.CustomerID, domainErrors.ErrNotFound)
	}
	if !actor.Role.Privileged() && customer.OperatorID != actor.ID {
		return model.CustomerTask{}, domainErrors.ErrForbidden
	}

	ids := make([]string, 0, len(snapshot.Tasks))
	for _, t := range snapshot.Tasks {
		ids = append(ids, t.ID)
	}

	return model.CustomerTask{
		ID:           NextID(ids),
		CustomerID:   customer.ID,
		CreatedAt:    u.gw.timestamp(),
		OperatorID:   actor.ID,
		OperatorName: actor.FullName(),
		CreatorID:    actor.ID,
		CreatorName:  actor.FullName(),
		Text:         text,
		Deadline:     deadline,
		Status:       model.TaskStatusNew,
	}, nil
}

func (u *TaskUseCase) prepareUpdate(snapshot model.Snapshot, actor model.Operator, task model.CustomerTask) (model.CustomerTask, error) {
	existing, ok := snapshot.FindTask(task.ID)
	if !ok {
		return model.CustomerTask{}, fmt.Errorf("task %s: %w", task.ID, domainErrors.ErrNotFound)
	}
	if !u.canEdit(snapshot, actor, existing) {
		return model.CustomerTask{}, domainErrors.ErrForbidden
	}

	updated := existing
	if text := strings.TrimSpace(task.Text); text != "" {
		updated.Text = text
	}
	if strings.TrimSpace(task.Deadline) != "" {
		deadline, err := u.normalizeDeadline(task.Deadline)
		if err != nil {
			return model.CustomerTask{}, err
		}
		updated.Deadline = deadline
	}
	if task.Status != "" {
		status, ok := model.ParseTaskStatus(string(task.Status))
		if !ok {
			return model.CustomerTask{}, fmt.Errorf("status %q: %w", task.Status, domainErrors.ErrInvalidTaskStatus)
		}
		updated.Status = status
	}
	if updated.CreatorID == "" {
		updated.CreatorID, updated.CreatorName = existing.OperatorID, existing.OperatorName
	}

	updated.OperatorID = actor.ID
	updated.OperatorName = actor.FullName()
	updated.CreatedAt = u.gw.timestamp()
	return updated, nil
}

// canEdit allows the task assignee, the customer's operator and admins.
func (u *TaskUseCase) canEdit(snapshot model.Snapshot, actor model.Operator, task model.CustomerTask) bool {
	if actor.Role.Privileged() || task.OperatorID == actor.ID {
		return true
	}
	customer, ok := snapshot.FindCustomer(task.CustomerID)
	return ok && customer.OperatorID == actor.ID
}

// normalizeDeadline accepts "YYYY-MM-DDTHH:mm" and stores "YYYY-MM-DD HH:mm".
func (u *TaskUseCase) normalizeDeadline(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", domainErrors.ErrTaskDeadlineRequired
	}
	parsed, ok := sheetdate.Parse(value, u.gw.location)
	if !ok {
		return "", fmt.Errorf("deadline %q: %w", value, domainErrors.ErrTaskDeadlineRequired)
	}
	return parsed.Format(sheetdate.DeadlineLayout), nil
}

func taskRow(t model.CustomerTask) map[string]any {
	return map[string]any{
		"topshiriq id":     t.ID,
		"mijoz id":         t.CustomerID,
		"saqlash vaqti":    t.CreatedAt,
		"operator id":      t.OperatorID,
		"operator":         t.OperatorName,
		"yaratuvchi id":    t.CreatorID,
		"yaratuvchi":       t.CreatorName,
		"topshiriq":        t.Text,
		"bajarish vaqti":   t.Deadline,
		"topshiriq holati": string(t.Status),
	}
}

