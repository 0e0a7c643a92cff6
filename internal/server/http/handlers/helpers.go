package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	pkgAuth "github.com/polkiloo/mentorcrm/internal/pkg/auth"
	"github.com/polkiloo/mentorcrm/internal/server/http/dto"
	"github.com/polkiloo/mentorcrm/internal/server/http/middleware"
)

// CurrentOperator extracts the authenticated operator from context.
func CurrentOperator(c *gin.Context) model.Operator {
	val, ok := c.Get(middleware.OperatorContextKey)
	if !ok {
		return model.Operator{}
	}
	operator, _ := val.(model.Operator)
	return operator
}

var validationErrors = []error{
	domainErrors.ErrRejectionReasonRequired,
	domainErrors.ErrTaskTextRequired,
	domainErrors.ErrTaskDeadlineRequired,
	domainErrors.ErrInvalidTaskStatus,
	domainErrors.ErrProductNameRequired,
	domainErrors.ErrInvalidPrice,
	domainErrors.ErrOperatorEmailRequired,
	domainErrors.ErrOperatorNameRequired,
	domainErrors.ErrStartDateRequired,
	domainErrors.ErrInvalidOrderStatus,
	domainErrors.ErrInvalidStage,
}

// statusFor maps a use case error to an HTTP status.
func statusFor(err error) int {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}
	switch {
	case errors.Is(err, domainErrors.ErrInvalidCredentials), errors.Is(err, pkgAuth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrEndpointNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, domainErrors.ErrUnexpectedPayload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return false
	}
	return true
}
