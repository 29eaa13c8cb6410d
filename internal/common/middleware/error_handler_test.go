package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drivehub-admin-backend/internal/common/errors"
	"drivehub-admin-backend/internal/platform/bookingapi"
)

func performRequest(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   errors.ErrorCode
	}{
		{"validation", errors.NewValidationError(map[string]string{"email": "Email is required"}), http.StatusBadRequest, errors.ErrCodeValidation},
		{"protected admin", errors.NewProtectedAdminError("The original admin account cannot be deleted"), http.StatusForbidden, errors.ErrCodeProtectedAdmin},
		{"confirmation not found", errors.NewConfirmationNotFoundError("abc"), http.StatusNotFound, errors.ErrCodeConfirmationNotFound},
		{"report empty", errors.NewReportEmptyError(), http.StatusUnprocessableEntity, errors.ErrCodeReportEmpty},
		{"conflict", errors.New(errors.ErrCodeConflict, "Role mismatch"), http.StatusConflict, errors.ErrCodeConflict},
		{"unknown error", assert.AnError, http.StatusInternalServerError, errors.ErrCodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequest(t, tc.err)
			assert.Equal(t, tc.wantStatus, w.Code)

			resp := decodeEnvelope(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestErrorHandlerUpstream4xxPassthrough(t *testing.T) {
	apiErr := &bookingapi.APIError{StatusCode: http.StatusConflict, Detail: "Email already registered"}
	w := performRequest(t, errors.NewUpstreamError("create admin", apiErr))

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, errors.ErrCodeUpstreamAPI, resp.Error.Code)
}

func TestErrorHandlerUpstream5xxBecomesBadGateway(t *testing.T) {
	apiErr := &bookingapi.APIError{StatusCode: http.StatusInternalServerError, Detail: "database down"}
	w := performRequest(t, errors.NewUpstreamError("list users", apiErr))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestErrorHandlerKeepsUpstreamDetailVerbatim(t *testing.T) {
	// A bare APIError (not pre-wrapped by a service) still surfaces the
	// platform's detail string as the message.
	apiErr := &bookingapi.APIError{StatusCode: http.StatusBadRequest, Detail: "Phone number already in use"}
	w := performRequest(t, apiErr)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Phone number already in use", resp.Error.Message)
}

func TestRequestIDEchoedAndGenerated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
