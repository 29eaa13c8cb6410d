package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "drivehub-admin-backend/internal/common/errors"
	"drivehub-admin-backend/internal/features/reports/models"
)

type fakeGateway struct {
	mu sync.Mutex

	summaries   []models.InstructorSummary
	reports     map[int64]*models.DetailedEarningsReport
	failing     map[int64]bool
	scheduleErr error

	detailCalls []int64
}

func (g *fakeGateway) GetInstructorSummaries(_ context.Context) ([]models.InstructorSummary, error) {
	return g.summaries, nil
}

func (g *fakeGateway) GetDetailedEarnings(_ context.Context, instructorID int64) (*models.DetailedEarningsReport, error) {
	g.mu.Lock()
	g.detailCalls = append(g.detailCalls, instructorID)
	g.mu.Unlock()

	if g.failing[instructorID] {
		return nil, apperrors.NewUpstreamError("detailed earnings", errors.New("boom"))
	}
	report, ok := g.reports[instructorID]
	if !ok {
		return nil, apperrors.NewUserNotFoundError(instructorID)
	}
	return report, nil
}

func (g *fakeGateway) GetInstructorSchedule(_ context.Context, _ int64) ([]models.ScheduleEntry, error) {
	if g.scheduleErr != nil {
		return nil, g.scheduleErr
	}
	return []models.ScheduleEntry{{DayOfWeek: "monday", StartTime: "08:00", EndTime: "17:00"}}, nil
}

func (g *fakeGateway) GetInstructorTimeOff(_ context.Context, _ int64) ([]models.TimeOffEntry, error) {
	return []models.TimeOffEntry{}, nil
}

func (g *fakeGateway) GetInstructorBookings(_ context.Context, _ int64) ([]models.BookingEntry, error) {
	return []models.BookingEntry{{BookingID: 5, StudentName: "Thabo Nkosi", Status: "confirmed"}}, nil
}

func (g *fakeGateway) GetRevenueStats(_ context.Context, _ string) (*models.RevenueStats, error) {
	return &models.RevenueStats{TotalRevenue: 50000, TotalBookings: 120}, nil
}

type nullCache struct{}

var errCacheMiss = errors.New("cache miss")

func (nullCache) Get(_ context.Context, _ string, _ interface{}) error { return errCacheMiss }
func (nullCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}
func (nullCache) Delete(_ context.Context, _ string) error        { return nil }
func (nullCache) DeletePattern(_ context.Context, _ string) error { return nil }

func report(id int64, name string) *models.DetailedEarningsReport {
	return &models.DetailedEarningsReport{
		InstructorID:   id,
		InstructorName: name,
		TotalEarnings:  1000,
		TotalLessons:   4,
		HourlyRate:     250,
	}
}

func TestExportEarningsDropsFailedInstructors(t *testing.T) {
	gw := &fakeGateway{
		reports: map[int64]*models.DetailedEarningsReport{
			11: report(11, "Sipho Dlamini"),
			13: report(13, "Anna Botha"),
		},
		failing: map[int64]bool{12: true},
	}
	svc := NewService(gw, nullCache{}, time.Minute, 2)

	file, err := svc.ExportEarnings(context.Background(), []int64{11, 12, 13}, FormatCSV, "")
	require.NoError(t, err)

	body := string(file.Data)
	assert.Contains(t, body, "Sipho Dlamini")
	assert.Contains(t, body, "Anna Botha")
	assert.Equal(t, 3, strings.Count(strings.TrimSpace(body), "\n")+1, "header plus two rows")
}

func TestExportEarningsAllFailuresIsReportEmpty(t *testing.T) {
	gw := &fakeGateway{failing: map[int64]bool{11: true, 12: true}}
	svc := NewService(gw, nullCache{}, time.Minute, 2)

	_, err := svc.ExportEarnings(context.Background(), []int64{11, 12}, FormatXLSX, "")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeReportEmpty, appErr.Code)
}

func TestExportEarningsEmptyIDsUsesAllInstructors(t *testing.T) {
	gw := &fakeGateway{
		summaries: []models.InstructorSummary{
			{InstructorID: 11, FullName: "Sipho Dlamini"},
			{InstructorID: 13, FullName: "Anna Botha"},
		},
		reports: map[int64]*models.DetailedEarningsReport{
			11: report(11, "Sipho Dlamini"),
			13: report(13, "Anna Botha"),
		},
	}
	svc := NewService(gw, nullCache{}, time.Minute, 2)

	file, err := svc.ExportEarnings(context.Background(), nil, FormatCSV, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{11, 13}, gw.detailCalls)
	assert.Contains(t, file.Name, ".csv")
	assert.Equal(t, "text/csv", file.ContentType)
}

func TestExportEarningsUnknownFormat(t *testing.T) {
	gw := &fakeGateway{reports: map[int64]*models.DetailedEarningsReport{11: report(11, "Sipho Dlamini")}}
	svc := NewService(gw, nullCache{}, time.Minute, 2)

	_, err := svc.ExportEarnings(context.Background(), []int64{11}, "docx", "")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeBadRequest, appErr.Code)
}

func TestExportEarningsCSVSectionNames(t *testing.T) {
	gw := &fakeGateway{reports: map[int64]*models.DetailedEarningsReport{11: report(11, "Sipho Dlamini")}}
	svc := NewService(gw, nullCache{}, time.Minute, 2)

	file, err := svc.ExportEarnings(context.Background(), []int64{11}, FormatCSV, "monthly")
	require.NoError(t, err)
	assert.Contains(t, file.Name, "earnings-report-monthly-")
}

func TestOverviewCombinesFetches(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, nullCache{}, time.Minute, 2)

	overview, err := svc.Overview(context.Background(), 11)
	require.NoError(t, err)
	require.Len(t, overview.Schedule, 1)
	assert.Equal(t, "monday", overview.Schedule[0].DayOfWeek)
	require.Len(t, overview.Bookings, 1)
	assert.NotNil(t, overview.TimeOff)
}

func TestOverviewSingleFailureCollapses(t *testing.T) {
	gw := &fakeGateway{scheduleErr: errors.New("schedule unavailable")}
	svc := NewService(gw, nullCache{}, time.Minute, 2)

	_, err := svc.Overview(context.Background(), 11)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeUpstreamAPI, appErr.Code)
	assert.Equal(t, int64(11), appErr.Details["instructor_id"])
}

func TestEarningsUsesGatewayOnCacheMiss(t *testing.T) {
	gw := &fakeGateway{reports: map[int64]*models.DetailedEarningsReport{11: report(11, "Sipho Dlamini")}}
	svc := NewService(gw, nullCache{}, time.Minute, 2)

	got, err := svc.Earnings(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "Sipho Dlamini", got.InstructorName)
	assert.Equal(t, []int64{11}, gw.detailCalls)
}
