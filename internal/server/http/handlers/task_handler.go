package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mentorcrm/internal/server/http/dto"
)

// TaskHandler saves follow-up tasks.
type TaskHandler struct {
	facade TaskFacade
}

// NewTaskHandler constructs TaskHandler.
func NewTaskHandler(facade TaskFacade) *TaskHandler {
	return &TaskHandler{facade: facade}
}

// Save handles POST /api/tasks. A request without id creates a task.
func (h *TaskHandler) Save(c *gin.Context) {
	var req dto.TaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.facade.SaveTask(c.Request.Context(), CurrentOperator(c), req.Task())
	if err != nil {
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, task)
}
