package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"drivehub-admin-backend/internal/common/errors"
	"drivehub-admin-backend/internal/common/logger"
	"drivehub-admin-backend/internal/platform/bookingapi"
)

// RequestID tags every request with an X-Request-ID, generating one when
// the caller did not send it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// GetRequestID reads the request ID set by RequestID.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return "unknown"
}

// ErrorResponse is the JSON envelope for every failed request.
type ErrorResponse struct {
	Success   bool             `json:"success"`
	Error     *errors.AppError `json:"error"`
	Timestamp time.Time        `json:"timestamp"`
	RequestID string           `json:"request_id"`
	Path      string           `json:"path,omitempty"`
	Method    string           `json:"method,omitempty"`
}

// ErrorHandler converts errors attached via c.Error into the shared JSON
// envelope after the handler chain runs.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		sendErrorResponse(c, toAppError(c.Errors.Last().Err))
	}
}

// Recovery turns panics into an internal-error response instead of
// killing the process.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("panic", fmt.Sprintf("%v", recovered)).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		appErr := errors.New(errors.ErrCodeInternal, "Internal server error").
			WithDetail("panic", fmt.Sprintf("%v", recovered))

		sendErrorResponse(c, appErr)
	})
}

func toAppError(err error) *errors.AppError {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr
	}

	// Upstream errors keep the gateway's detail string so the console can
	// show it verbatim.
	if apiErr, ok := bookingapi.AsAPIError(err); ok {
		return errors.Wrap(err, errors.ErrCodeUpstreamAPI, apiErr.Detail).
			WithDetail("upstream_status", apiErr.StatusCode)
	}

	return errors.Wrap(err, errors.ErrCodeInternal, "Internal server error")
}

func sendErrorResponse(c *gin.Context, appErr *errors.AppError) {
	requestID := GetRequestID(c)
	appErr.WithRequestID(requestID)

	logError(c, appErr)

	c.AbortWithStatusJSON(httpStatus(appErr), ErrorResponse{
		Success:   false,
		Error:     appErr,
		Timestamp: time.Now(),
		RequestID: requestID,
		Path:      c.Request.URL.Path,
		Method:    c.Request.Method,
	})
}

func httpStatus(appErr *errors.AppError) int {
	switch appErr.Code {
	case errors.ErrCodeValidation, errors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeUserNotFound, errors.ErrCodeConfirmationNotFound:
		return http.StatusNotFound
	case errors.ErrCodeForbidden, errors.ErrCodeProtectedAdmin:
		return http.StatusForbidden
	case errors.ErrCodeConflict:
		return http.StatusConflict
	case errors.ErrCodeReportEmpty:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUpstreamAPI:
		return upstreamStatus(appErr)
	case errors.ErrCodeCacheError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// upstreamStatus passes gateway 4xx codes through and maps everything
// else to 502.
func upstreamStatus(appErr *errors.AppError) int {
	if apiErr, ok := bookingapi.AsAPIError(appErr.Cause); ok {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
	}
	return http.StatusBadGateway
}

func logError(c *gin.Context, appErr *errors.AppError) {
	event := logger.Info()
	switch {
	case appErr.IsInternal():
		event = logger.Error()
	case appErr.Code == errors.ErrCodeProtectedAdmin || appErr.Code == errors.ErrCodeForbidden:
		event = logger.Warn()
	}

	event.
		Str("request_id", GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("error_code", string(appErr.Code)).
		Str("error_message", appErr.Message).
		Err(appErr.Cause).
		Msg("Request failed")
}
