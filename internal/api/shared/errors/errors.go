package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-market/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeInsufficientFund ErrorCode = "insufficient_funds"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewServiceError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// domainErrors maps engine errors to their HTTP status and code
var domainErrors = []struct {
	err    error
	status int
	code   ErrorCode
}{
	{domain.ErrListingNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrCatalogEntryNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrNotOwner, http.StatusForbidden, ErrCodeForbidden},
	{domain.ErrNotPrivileged, http.StatusForbidden, ErrCodeForbidden},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired, ErrCodeInsufficientFund},
	{domain.ErrSelfPurchaseForbidden, http.StatusConflict, ErrCodeConflict},
	{domain.ErrBalanceCapReached, http.StatusConflict, ErrCodeConflict},
	{domain.ErrMaxListingsExceeded, http.StatusConflict, ErrCodeConflict},
	{domain.ErrCatalogEntryInactive, http.StatusConflict, ErrCodeConflict},
	{domain.ErrInvalidQuantity, http.StatusUnprocessableEntity, ErrCodeValidationFailed},
	{domain.ErrInvalidPrice, http.StatusUnprocessableEntity, ErrCodeValidationFailed},
	{domain.ErrPriceTooHigh, http.StatusUnprocessableEntity, ErrCodeValidationFailed},
	{domain.ErrInvalidInput, http.StatusUnprocessableEntity, ErrCodeValidationFailed},
	{domain.ErrItemBlacklisted, http.StatusUnprocessableEntity, ErrCodeValidationFailed},
	{domain.ErrNotRecyclable, http.StatusUnprocessableEntity, ErrCodeValidationFailed},
}

// FromDomainError converts an engine error into an API error and its HTTP status.
// Errors that are not engine errors become internal errors.
func FromDomainError(err error) (int, *APIError) {
	for _, e := range domainErrors {
		if errors.Is(err, e.err) {
			return e.status, &APIError{
				Code:    e.code,
				Message: e.err.Error(),
				Details: err.Error(),
			}
		}
	}
	return http.StatusInternalServerError, NewInternalError("Internal server error")
}
