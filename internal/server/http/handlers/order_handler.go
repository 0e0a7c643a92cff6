package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Submit handles POST /api/orders.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req dto.OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.facade.SubmitOrder(c.Request.Context(), CurrentOperator(c), model.OrderDraft{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Note:       req.Note,
		StartDate:  req.StartDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ChangeStatus handles POST /api/orders/status.
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	var req dto.OrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	orders, err := h.facade.ChangeOrderStatus(c.Request.Context(), CurrentOperator(c), req.OrderIDs, model.OrderStatus(req.Status), req.Note)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
