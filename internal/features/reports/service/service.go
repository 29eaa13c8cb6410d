package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"drivehub-admin-backend/internal/common/cache"
	"drivehub-admin-backend/internal/common/errors"
	"drivehub-admin-backend/internal/features/reports/aggregator"
	"drivehub-admin-backend/internal/features/reports/exporter"
	"drivehub-admin-backend/internal/features/reports/models"
)

// Export formats accepted by the earnings export endpoint.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
	FormatCSV  = "csv"
)

// Gateway is the slice of the booking platform API the reports need.
type Gateway interface {
	GetInstructorSummaries(ctx context.Context) ([]models.InstructorSummary, error)
	GetDetailedEarnings(ctx context.Context, instructorID int64) (*models.DetailedEarningsReport, error)
	GetInstructorSchedule(ctx context.Context, instructorID int64) ([]models.ScheduleEntry, error)
	GetInstructorTimeOff(ctx context.Context, instructorID int64) ([]models.TimeOffEntry, error)
	GetInstructorBookings(ctx context.Context, instructorID int64) ([]models.BookingEntry, error)
	GetRevenueStats(ctx context.Context, period string) (*models.RevenueStats, error)
}

// ExportFile is a rendered report ready to be sent as a download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type Service interface {
	Summaries(ctx context.Context) ([]models.InstructorSummary, error)
	Earnings(ctx context.Context, instructorID int64) (*models.DetailedEarningsReport, error)
	Overview(ctx context.Context, instructorID int64) (*models.InstructorOverview, error)
	RevenueStats(ctx context.Context, period string) (*models.RevenueStats, error)
	ExportEarnings(ctx context.Context, instructorIDs []int64, format, section string) (*ExportFile, error)
}

type service struct {
	gw           Gateway
	cache        cache.Cache
	cacheTTL     time.Duration
	fetchWorkers int
	logger       zerolog.Logger
}

func NewService(gw Gateway, c cache.Cache, cacheTTL time.Duration, fetchWorkers int) Service {
	if fetchWorkers <= 0 {
		fetchWorkers = 4
	}
	return &service{
		gw:           gw,
		cache:        c,
		cacheTTL:     cacheTTL,
		fetchWorkers: fetchWorkers,
		logger:       log.With().Str("component", "reports").Logger(),
	}
}

func (s *service) Summaries(ctx context.Context) ([]models.InstructorSummary, error) {
	return s.gw.GetInstructorSummaries(ctx)
}

// Earnings fetches one instructor's detailed earnings snapshot through a
// short-TTL cache.
func (s *service) Earnings(ctx context.Context, instructorID int64) (*models.DetailedEarningsReport, error) {
	key := cache.EarningsKey(instructorID)

	var cached models.DetailedEarningsReport
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	report, err := s.gw.GetDetailedEarnings(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, report, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Int64("instructor_id", instructorID).Msg("Failed to cache earnings report")
	}
	return report, nil
}

// Overview issues the three independent per-instructor fetches
// concurrently and waits for all of them; any single failure collapses
// into one combined error.
func (s *service) Overview(ctx context.Context, instructorID int64) (*models.InstructorOverview, error) {
	overview := &models.InstructorOverview{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		schedule, err := s.gw.GetInstructorSchedule(gctx, instructorID)
		if err != nil {
			return err
		}
		overview.Schedule = schedule
		return nil
	})
	g.Go(func() error {
		timeOff, err := s.gw.GetInstructorTimeOff(gctx, instructorID)
		if err != nil {
			return err
		}
		overview.TimeOff = timeOff
		return nil
	})
	g.Go(func() error {
		bookings, err := s.gw.GetInstructorBookings(gctx, instructorID)
		if err != nil {
			return err
		}
		overview.Bookings = bookings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, errors.NewUpstreamError("instructor overview", err).
			WithDetail("instructor_id", instructorID)
	}
	return overview, nil
}

func (s *service) RevenueStats(ctx context.Context, period string) (*models.RevenueStats, error) {
	return s.gw.GetRevenueStats(ctx, period)
}

// ExportEarnings builds the multi-instructor earnings report and renders
// it in the requested format. Empty instructorIDs means every instructor
// the platform knows about. Individual fetch failures are dropped from
// the aggregate; only a wholesale failure is an error.
func (s *service) ExportEarnings(ctx context.Context, instructorIDs []int64, format, section string) (*ExportFile, error) {
	if len(instructorIDs) == 0 {
		summaries, err := s.gw.GetInstructorSummaries(ctx)
		if err != nil {
			return nil, err
		}
		for _, sum := range summaries {
			instructorIDs = append(instructorIDs, sum.InstructorID)
		}
	}

	reports := s.fetchReports(ctx, instructorIDs)

	rows, err := aggregator.Build(reports)
	if err != nil {
		return nil, errors.NewReportEmptyError()
	}

	return renderExport(rows, format, section)
}

// fetchReports fetches details for each instructor with bounded
// concurrency. A failed fetch leaves a nil at its position so the
// aggregate keeps the input order of the survivors.
func (s *service) fetchReports(ctx context.Context, instructorIDs []int64) []*models.DetailedEarningsReport {
	reports := make([]*models.DetailedEarningsReport, len(instructorIDs))

	g := &errgroup.Group{}
	g.SetLimit(s.fetchWorkers)
	for i, id := range instructorIDs {
		i, id := i, id
		g.Go(func() error {
			report, err := s.Earnings(ctx, id)
			if err != nil {
				s.logger.Warn().Err(err).Int64("instructor_id", id).Msg("Dropping instructor from report")
				return nil
			}
			reports[i] = report
			return nil
		})
	}
	_ = g.Wait()

	return reports
}

func renderExport(rows *aggregator.Rows, format, section string) (*ExportFile, error) {
	stamp := time.Now().Format("2006-01-02")
	var buf bytes.Buffer

	switch format {
	case FormatXLSX:
		if err := exporter.WriteXLSX(&buf, rows); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "Failed to render workbook")
		}
		return &ExportFile{
			Name:        fmt.Sprintf("earnings-report-%s.xlsx", stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        buf.Bytes(),
		}, nil
	case FormatPDF:
		if err := exporter.WritePDF(&buf, rows); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "Failed to render PDF")
		}
		return &ExportFile{
			Name:        fmt.Sprintf("earnings-report-%s.pdf", stamp),
			ContentType: "application/pdf",
			Data:        buf.Bytes(),
		}, nil
	case FormatCSV:
		if err := exporter.WriteCSV(&buf, rows, section); err != nil {
			return nil, errors.New(errors.ErrCodeBadRequest, err.Error())
		}
		name := fmt.Sprintf("earnings-report-%s.csv", stamp)
		if section != "" && section != exporter.SectionSummary {
			name = fmt.Sprintf("earnings-report-%s-%s.csv", section, stamp)
		}
		return &ExportFile{
			Name:        name,
			ContentType: "text/csv",
			Data:        buf.Bytes(),
		}, nil
	default:
		return nil, errors.New(errors.ErrCodeBadRequest, fmt.Sprintf("Unknown export format: %s", format))
	}
}
