package errors

import (
	"fmt"
	"time"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	ErrCodeForbidden  ErrorCode = "FORBIDDEN"
	ErrCodeConflict   ErrorCode = "CONFLICT"

	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"

	// ErrCodeProtectedAdmin guards the bootstrap admin account from
	// suspension and deletion through the console.
	ErrCodeProtectedAdmin ErrorCode = "PROTECTED_ADMIN"

	ErrCodeConfirmationNotFound ErrorCode = "CONFIRMATION_NOT_FOUND"

	// ErrCodeUpstreamAPI covers any failed call to the booking platform API.
	ErrCodeUpstreamAPI ErrorCode = "UPSTREAM_API_ERROR"

	ErrCodeCacheError ErrorCode = "CACHE_ERROR"

	// ErrCodeReportEmpty means every per-instructor earnings fetch failed,
	// so there is nothing to aggregate.
	ErrCodeReportEmpty ErrorCode = "REPORT_EMPTY"
)

// AppError is the error type surfaced by every layer of the service.
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	RequestID string                 `json:"request_id,omitempty"`
	Cause     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) IsNotFound() bool {
	return e.Code == ErrCodeNotFound ||
		e.Code == ErrCodeUserNotFound ||
		e.Code == ErrCodeConfirmationNotFound
}

func (e *AppError) IsValidation() bool {
	return e.Code == ErrCodeValidation
}

func (e *AppError) IsInternal() bool {
	return e.Code == ErrCodeInternal ||
		e.Code == ErrCodeCacheError ||
		e.Code == ErrCodeUpstreamAPI
}

// WithDetail attaches structured information to the error.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

// New creates a new application error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Wrap attaches a cause to a new application error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// NewValidationError carries the per-field error map of a rejected form.
func NewValidationError(fields map[string]string) *AppError {
	return New(ErrCodeValidation, "Validation failed").
		WithDetail("fields", fields)
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithDetail("resource", resource).
		WithDetail("id", id)
}

func NewUserNotFoundError(userID int64) *AppError {
	return New(ErrCodeUserNotFound, fmt.Sprintf("User not found: %d", userID)).
		WithDetail("user_id", userID)
}

func NewProtectedAdminError(reason string) *AppError {
	return New(ErrCodeProtectedAdmin, reason)
}

func NewConfirmationNotFoundError(id string) *AppError {
	return New(ErrCodeConfirmationNotFound, "Pending action not found or expired").
		WithDetail("confirmation_id", id)
}

// NewUpstreamError keeps the upstream detail string intact so the console
// can display it verbatim.
func NewUpstreamError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeUpstreamAPI, fmt.Sprintf("Booking platform request failed: %s", operation)).
		WithDetail("operation", operation)
}

func NewCacheError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeCacheError, fmt.Sprintf("Cache operation failed: %s", operation)).
		WithDetail("operation", operation)
}

func NewReportEmptyError() *AppError {
	return New(ErrCodeReportEmpty, "No earnings data could be fetched for any instructor")
}

// AsAppError casts err to AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil {
		appErr, _ = err.(*AppError)
	}
	return appErr, appErr != nil
}
