package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/server/http/dto"
)

// SettingsHandler edits record store endpoints and funnel stages.
type SettingsHandler struct {
	facade SettingsFacade
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(facade SettingsFacade) *SettingsHandler {
	return &SettingsHandler{facade: facade}
}

// Endpoints handles GET /api/settings/endpoints.
func (h *SettingsHandler) Endpoints(c *gin.Context) {
	endpoints, err := h.facade.Endpoints(c.Request.Context(), CurrentOperator(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, endpoints)
}

// SetEndpoints handles PUT /api/settings/endpoints.
func (h *SettingsHandler) SetEndpoints(c *gin.Context) {
	var req model.Endpoints
	if !bindJSON(c, &req) {
		return
	}
	endpoints, err := h.facade.SetEndpoints(c.Request.Context(), CurrentOperator(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, endpoints)
}

// Stages handles GET /api/settings/stages.
func (h *SettingsHandler) Stages(c *gin.Context) {
	stages, err := h.facade.Stages(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StagesResponse{Stages: stages})
}

// AddStage handles POST /api/settings/stages.
func (h *SettingsHandler) AddStage(c *gin.Context) {
	var req dto.StageRequest
	if !bindJSON(c, &req) {
		return
	}
	stages, err := h.facade.AddStage(c.Request.Context(), CurrentOperator(c), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.StagesResponse{Stages: stages})
}

// RemoveStage handles DELETE /api/settings/stages/:name.
func (h *SettingsHandler) RemoveStage(c *gin.Context) {
	stages, err := h.facade.RemoveStage(c.Request.Context(), CurrentOperator(c), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StagesResponse{Stages: stages})
}
