package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SyncHandler serves the snapshot and its live updates.
type SyncHandler struct {
	facade SyncFacade
	stream StreamServer
	logger *slog.Logger
}

// NewSyncHandler constructs SyncHandler.
func NewSyncHandler(facade SyncFacade, stream StreamServer, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{facade: facade, stream: stream, logger: logger}
}

// Snapshot handles GET /api/snapshot.
func (h *SyncHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.Snapshot())
}

// Resync handles POST /api/sync and returns the freshly published snapshot.
func (h *SyncHandler) Resync(c *gin.Context) {
	snapshot, err := h.facade.Resync(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Stream handles GET /api/ws.
func (h *SyncHandler) Stream(c *gin.Context) {
	operator := CurrentOperator(c)
	if err := h.stream.Serve(c.Writer, c.Request, operator.ID); err != nil {
		h.logger.Warn("websocket upgrade failed",
			slog.String("operator_id", operator.ID),
			slog.String("error", err.Error()),
		)
	}
}
