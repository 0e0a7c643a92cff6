package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	ErrEndpointNotConfigured = errors.New("endpoint not configured")
	ErrUnexpectedPayload     = errors.New("unexpected payload")

	ErrRejectionReasonRequired = errors.New("rejection reason required")
	ErrTaskTextRequired        = errors.New("task text required")
	ErrTaskDeadlineRequired    = errors.New("task deadline required")
	ErrInvalidTaskStatus       = errors.New("invalid task status")
	ErrProductNameRequired     = errors.New("product name required")
	ErrInvalidPrice            = errors.New("invalid price")
	ErrOperatorEmailRequired   = errors.New("operator email required")
	ErrOperatorNameRequired    = errors.New("operator name required")
	ErrStartDateRequired       = errors.New("start date required")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrInvalidStage            = errors.New("invalid stage")
	ErrBulkPartialFailure      = errors.New("bulk operation partially failed")
)
