package stats

import (
	"sort"
	"strconv"
	"time"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/pkg/sheetdate"
)

const urgentTaskWindow = 2 * time.Hour

// TaskView is a task together with the status shown to users.
type TaskView struct {
	model.CustomerTask
	DisplayStatus model.TaskStatus `json:"displayStatus"`
	Overdue       bool             `json:"overdue"`
}

// Board splits the tasks a viewer may see.
type Board struct {
	Tasks  []TaskView `json:"tasks"`
	Urgent []TaskView `json:"urgent"`
	Today  []TaskView `json:"today"`
}

// TaskBoard derives the task lists for viewer. Operators see tasks of the
// customers currently assigned to them.
func TaskBoard(snapshot model.Snapshot, viewer model.Operator, now time.Time) Board {
	owned := make(map[string]struct{})
	for _, c := range snapshot.Customers {
		if c.OperatorID == viewer.ID {
			owned[c.ID] = struct{}{}
		}
	}

	board := Board{Tasks: []TaskView{}, Urgent: []TaskView{}, Today: []TaskView{}}
	for _, task := range snapshot.Tasks {
		if !viewer.Role.Privileged() {
			if _, ok := owned[task.CustomerID]; !ok {
				continue
			}
		}

		view := TaskView{CustomerTask: task, DisplayStatus: task.Status}
		deadline, hasDeadline := sheetdate.Parse(task.Deadline, now.Location())
		open := task.Status == model.TaskStatusNew

		if open && hasDeadline && now.After(deadline) {
			view.Overdue = true
			view.DisplayStatus = model.TaskStatusOverdue
		}
		board.Tasks = append(board.Tasks, view)

		if !open || !hasDeadline {
			continue
		}
		if !view.Overdue && !deadline.After(now.Add(urgentTaskWindow)) {
			board.Urgent = append(board.Urgent, view)
		}
		if sheetdate.SameDay(now, deadline) {
			board.Today = append(board.Today, view)
		}
	}

	sort.SliceStable(board.Tasks, func(i, j int) bool {
		return taskNumber(board.Tasks[i].ID) > taskNumber(board.Tasks[j].ID)
	})
	return board
}

func taskNumber(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return n
}
