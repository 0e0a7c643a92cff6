package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/server/http/dto"
)

// CustomerHandler edits customers and their operator assignment.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.facade.UpdateCustomer(c.Request.Context(), CurrentOperator(c), req.Customer(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Assign handles POST /api/customers/assign.
func (h *CustomerHandler) Assign(c *gin.Context) {
	h.bulk(c, h.facade.AssignCustomers)
}

// Unassign handles POST /api/customers/unassign.
func (h *CustomerHandler) Unassign(c *gin.Context) {
	h.bulk(c, h.facade.UnassignCustomers)
}

type bulkFunc = func(ctx context.Context, actor model.Operator, operatorID string, ids []string) (model.BulkResult, error)

func (h *CustomerHandler) bulk(c *gin.Context, run bulkFunc) {
	var req dto.BulkRequest
	if !bindJSON(c, &req) {
		return
	}
	if len(req.CustomerIDs) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "customerIds is empty"})
		return
	}

	result, err := run(c.Request.Context(), CurrentOperator(c), req.OperatorID, req.CustomerIDs)
	if err != nil && !errors.Is(err, domainErrors.ErrBulkPartialFailure) {
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusMultiStatus
	}
	c.JSON(status, toBulkResponse(result))
}

func toBulkResponse(result model.BulkResult) dto.BulkResponse {
	resp := dto.BulkResponse{Items: make([]dto.BulkItem, 0, len(result.Items)), Failed: []string{}}
	for _, item := range result.Items {
		entry := dto.BulkItem{ID: item.ID, OK: item.Err == nil}
		if item.Err != nil {
			entry.Error = item.Err.Error()
			resp.Failed = append(resp.Failed, item.ID)
		}
		resp.Items = append(resp.Items, entry)
	}
	return resp
}
