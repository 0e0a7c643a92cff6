package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mentorcrm/internal/server/http/dto"
)

// CatalogHandler creates courses and staff accounts.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// CreateProduct handles POST /api/products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), CurrentOperator(c), req.Product())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// CreateOperator handles POST /api/operators.
func (h *CatalogHandler) CreateOperator(c *gin.Context) {
	var req dto.OperatorRequest
	if !bindJSON(c, &req) {
		return
	}

	operator, err := h.facade.CreateOperator(c.Request.Context(), CurrentOperator(c), req.Operator())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, operator)
}
