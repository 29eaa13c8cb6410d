package bookingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	directorymodels "drivehub-admin-backend/internal/features/directory/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", 5*time.Second)
}

func TestListUsers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/admin/users", r.URL.Path)
		assert.Equal(t, "instructor", r.URL.Query().Get("role"))
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 21, "full_name": "Sipho Dlamini", "role": "instructor", "status": "active"}]`))
	})

	users, err := client.ListUsers(context.Background(), "instructor", "active")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(21), users[0].ID)
	assert.Equal(t, "Sipho Dlamini", users[0].FullName)
}

func TestCreateAdminSendsPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/admins", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req directorymodels.CreateAdminRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "John", req.FirstName)
		assert.Equal(t, directorymodels.DefaultAddress, req.Address)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 99, "full_name": "John Doe", "role": "admin", "status": "active"}`))
	})

	created, err := client.CreateAdmin(context.Background(), directorymodels.CreateAdminRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "admin@x.com",
		Phone:     "0821234567",
		IDNumber:  "9001015009087",
		Address:   directorymodels.DefaultAddress,
		Password:  "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), created.ID)
	assert.Equal(t, directorymodels.StatusActive, created.Status)
}

func TestErrorDetailIsDecoded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail": "Email already registered"}`))
	})

	_, err := client.CreateAdmin(context.Background(), directorymodels.CreateAdminRequest{})
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "wrapped APIError must survive errors.As")
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Email already registered", apiErr.Detail)
}

func TestErrorWithoutDetailGetsFallbackMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := client.Health(context.Background())
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Detail, "502")
}

func TestIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "User not found"}`))
	})

	_, err := client.GetUser(context.Background(), 404)
	assert.True(t, IsNotFound(err))
}

func TestUpdateUserStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/users/21/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "suspended", body["status"])

		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.UpdateUserStatus(context.Background(), 21, "suspended"))
}

func TestDeleteInstructor(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/admin/instructors/21", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteInstructor(context.Background(), 21))
}

func TestGetDetailedEarnings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/instructors/11/earnings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"instructor_id": 11,
			"instructor_name": "Sipho Dlamini",
			"total_earnings": 12500.5,
			"total_lessons": 40,
			"lesson_breakdown": {"completed": 35, "upcoming": 3, "cancelled": 1, "no_show": 1},
			"monthly_earnings": [{"month": "Feb 2026", "earnings": 6000, "lessons": 18}]
		}`))
	})

	report, err := client.GetDetailedEarnings(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, 12500.5, report.TotalEarnings)
	assert.Equal(t, 35, report.Breakdown.Completed)
	require.Len(t, report.Monthly, 1)
	assert.Equal(t, "Feb 2026", report.Monthly[0].Month)
}
