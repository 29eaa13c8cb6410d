// Package bookingapi is the REST client for the booking platform API, the
// external collaborator that owns all durable data. The console only ever
// reads from and forwards writes to it.
package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	directorymodels "drivehub-admin-backend/internal/features/directory/models"
	reportsmodels "drivehub-admin-backend/internal/features/reports/models"
)

// APIError is a non-2xx gateway response. Detail carries the platform's
// human-readable message and is shown to the admin verbatim.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking platform returned %d: %s", e.StatusCode, e.Detail)
}

// AsAPIError casts err to APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a gateway 404.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     zerolog.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		logger:     log.With().Str("component", "bookingapi").Logger(),
	}
}

// ListUsers fetches the directory for one role, optionally narrowed by
// status. Empty status means all statuses.
func (c *Client) ListUsers(ctx context.Context, role, status string) ([]directorymodels.UserRecord, error) {
	query := url.Values{}
	if role != "" {
		query.Set("role", role)
	}
	if status != "" {
		query.Set("status", status)
	}

	var users []directorymodels.UserRecord
	if err := c.do(ctx, http.MethodGet, "/admin/users", query, nil, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*directorymodels.UserRecord, error) {
	var user directorymodels.UserRecord
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/users/%d", id), nil, nil, &user); err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

func (c *Client) CreateAdmin(ctx context.Context, req directorymodels.CreateAdminRequest) (*directorymodels.UserRecord, error) {
	var created directorymodels.UserRecord
	if err := c.do(ctx, http.MethodPost, "/admin/admins", nil, req, &created); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	c.logger.Info().Int64("admin_id", created.ID).Msg("Admin account created")
	return &created, nil
}

func (c *Client) GetAdminSettings(ctx context.Context) (*directorymodels.AdminSettings, error) {
	var settings directorymodels.AdminSettings
	if err := c.do(ctx, http.MethodGet, "/admin/settings", nil, nil, &settings); err != nil {
		return nil, fmt.Errorf("failed to get admin settings: %w", err)
	}
	return &settings, nil
}

func (c *Client) UpdateUserStatus(ctx context.Context, id int64, status string) error {
	body := directorymodels.StatusUpdateRequest{Status: status}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/status", id), nil, body, nil); err != nil {
		return fmt.Errorf("failed to update status of user %d: %w", id, err)
	}
	c.logger.Info().Int64("user_id", id).Str("status", status).Msg("User status updated")
	return nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req directorymodels.UpdateUserRequest) (*directorymodels.UserRecord, error) {
	var updated directorymodels.UserRecord
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d", id), nil, req, &updated); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	body := directorymodels.ResetPasswordRequest{NewPassword: newPassword}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%d/reset-password", id), nil, body, nil); err != nil {
		return fmt.Errorf("failed to reset password of user %d: %w", id, err)
	}
	return nil
}

// DeleteAdmin removes an admin account. The platform may turn this into a
// soft-delete of the role profile while preserving the base account.
func (c *Client) DeleteAdmin(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/admins/%d", id), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete admin %d: %w", id, err)
	}
	c.logger.Info().Int64("admin_id", id).Msg("Admin account deleted")
	return nil
}

func (c *Client) DeleteInstructor(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/instructors/%d", id), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete instructor %d: %w", id, err)
	}
	c.logger.Info().Int64("instructor_id", id).Msg("Instructor profile deleted")
	return nil
}

func (c *Client) DeleteStudent(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/students/%d", id), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete student %d: %w", id, err)
	}
	c.logger.Info().Int64("student_id", id).Msg("Student profile deleted")
	return nil
}

// GetInstructorBookingSummary is the pre-delete impact check.
func (c *Client) GetInstructorBookingSummary(ctx context.Context, id int64) (*reportsmodels.BookingSummary, error) {
	var summary reportsmodels.BookingSummary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/instructors/%d/booking-summary", id), nil, nil, &summary); err != nil {
		return nil, fmt.Errorf("failed to get booking summary of instructor %d: %w", id, err)
	}
	return &summary, nil
}

// GetStudentBookingSummary is the pre-delete impact check for students.
func (c *Client) GetStudentBookingSummary(ctx context.Context, id int64) (*reportsmodels.BookingSummary, error) {
	var summary reportsmodels.BookingSummary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/students/%d/booking-summary", id), nil, nil, &summary); err != nil {
		return nil, fmt.Errorf("failed to get booking summary of student %d: %w", id, err)
	}
	return &summary, nil
}

func (c *Client) GetInstructorSummaries(ctx context.Context) ([]reportsmodels.InstructorSummary, error) {
	var summaries []reportsmodels.InstructorSummary
	if err := c.do(ctx, http.MethodGet, "/admin/instructors/summaries", nil, nil, &summaries); err != nil {
		return nil, fmt.Errorf("failed to list instructor summaries: %w", err)
	}
	return summaries, nil
}

func (c *Client) GetDetailedEarnings(ctx context.Context, instructorID int64) (*reportsmodels.DetailedEarningsReport, error) {
	var report reportsmodels.DetailedEarningsReport
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/instructors/%d/earnings", instructorID), nil, nil, &report); err != nil {
		return nil, fmt.Errorf("failed to get earnings of instructor %d: %w", instructorID, err)
	}
	return &report, nil
}

func (c *Client) GetInstructorSchedule(ctx context.Context, instructorID int64) ([]reportsmodels.ScheduleEntry, error) {
	var schedule []reportsmodels.ScheduleEntry
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/instructors/%d/schedule", instructorID), nil, nil, &schedule); err != nil {
		return nil, fmt.Errorf("failed to get schedule of instructor %d: %w", instructorID, err)
	}
	return schedule, nil
}

func (c *Client) GetInstructorTimeOff(ctx context.Context, instructorID int64) ([]reportsmodels.TimeOffEntry, error) {
	var timeOff []reportsmodels.TimeOffEntry
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/instructors/%d/time-off", instructorID), nil, nil, &timeOff); err != nil {
		return nil, fmt.Errorf("failed to get time off of instructor %d: %w", instructorID, err)
	}
	return timeOff, nil
}

func (c *Client) GetInstructorBookings(ctx context.Context, instructorID int64) ([]reportsmodels.BookingEntry, error) {
	var bookings []reportsmodels.BookingEntry
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/instructors/%d/bookings", instructorID), nil, nil, &bookings); err != nil {
		return nil, fmt.Errorf("failed to get bookings of instructor %d: %w", instructorID, err)
	}
	return bookings, nil
}

func (c *Client) GetRevenueStats(ctx context.Context, period string) (*reportsmodels.RevenueStats, error) {
	query := url.Values{}
	if period != "" {
		query.Set("period", period)
	}

	var stats reportsmodels.RevenueStats
	if err := c.do(ctx, http.MethodGet, "/admin/revenue/stats", query, nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to get revenue stats: %w", err)
	}
	return &stats, nil
}

// Health pings the gateway for the readiness probe.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

// do issues one JSON request against the gateway. Non-2xx responses are
// decoded into APIError using the platform's {"detail": "..."} payload.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, query.Encode())
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *Client) decodeError(status int, body []byte) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	detail := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		detail = payload.Detail
	}
	if detail == "" {
		detail = fmt.Sprintf("request failed with status %d", status)
	}

	c.logger.Warn().Int("status", status).Str("detail", detail).Msg("Gateway request failed")
	return &APIError{StatusCode: status, Detail: detail}
}
