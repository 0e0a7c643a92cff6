package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/server/http/dto"
	"github.com/polkiloo/mentorcrm/internal/stats"
)

// StatsHandler serves derived dashboard figures.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// filter reads range, from, to, operators and status query parameters.
func (h *StatsHandler) filter(c *gin.Context) (stats.Filter, bool) {
	f := stats.Filter{
		Range:  stats.ParseRange(c.Query("range")),
		Status: model.OrderStatus(strings.TrimSpace(c.Query("status"))),
		Viewer: CurrentOperator(c),
	}
	for _, id := range strings.Split(c.Query("operators"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			f.OperatorIDs = append(f.OperatorIDs, id)
		}
	}

	loc := h.facade.Location()
	for _, p := range []struct {
		key string
		dst *time.Time
	}{{"from", &f.From}, {"to", &f.To}} {
		raw := c.Query(p.key)
		if raw == "" {
			continue
		}
		t, ok := stats.ParseDate(raw, loc)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + p.key + " date"})
			return stats.Filter{}, false
		}
		*p.dst = t
	}
	return f, true
}

// Sales handles GET /api/stats/sales.
func (h *StatsHandler) Sales(c *gin.Context) {
	f, ok := h.filter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.facade.Sales(f))
}

// Rankings handles GET /api/stats/rankings.
func (h *StatsHandler) Rankings(c *gin.Context) {
	f, ok := h.filter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.facade.OperatorRanking(f))
}

// Inactive handles GET /api/stats/inactive.
func (h *StatsHandler) Inactive(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.InactiveCustomers(CurrentOperator(c)))
}

// UrgentOrders handles GET /api/stats/urgent-orders.
func (h *StatsHandler) UrgentOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.UrgentOrders(CurrentOperator(c)))
}

// Tasks handles GET /api/stats/tasks.
func (h *StatsHandler) Tasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.TaskBoard(CurrentOperator(c)))
}

// Reports handles GET /api/stats/reports.
func (h *StatsHandler) Reports(c *gin.Context) {
	report, err := h.facade.Reports(CurrentOperator(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
