package apperror

import (
	"encoding/json"
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Errors  []FieldError    `json:"errors,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized   = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden      = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrInvalidToken   = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}

	// Pricing errors. All of these are caused by client input and map to 4xx.
	ErrMissingPrice        = &AppError{Code: http.StatusBadRequest, Message: "Listing does not have a valid price"}
	ErrInvalidBookingRange = &AppError{Code: http.StatusBadRequest, Message: "Booking end must be after booking start"}
	ErrListingNotFound     = &AppError{Code: http.StatusNotFound, Message: "Listing not found"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewInvalidBookingRangeError creates a bad request error for a booking whose
// dates or quantity cannot produce a positive number of booking units
func NewInvalidBookingRangeError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewUnsupportedUnitTypeError creates a bad request error for a listing whose
// booking unit type the pricing engine does not understand
func NewUnsupportedUnitTypeError(unitType string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Unsupported booking unit type: " + unitType,
	}
}

// NewCredentialExchangeError wraps a failed trusted-credential exchange
func NewCredentialExchangeError(err error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Message: "Trusted credential exchange failed: " + err.Error(),
	}
}

// NewUpstreamError preserves the status and body returned by the marketplace
// backend so that callers see the original failure, not a generic one
func NewUpstreamError(status int, message string, body []byte) *AppError {
	return &AppError{
		Code:    status,
		Message: message,
		Data:    json.RawMessage(body),
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
