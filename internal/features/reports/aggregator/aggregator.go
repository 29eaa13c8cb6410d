// Package aggregator flattens detailed earnings reports into the tabular
// rows shared by every export format. All transformations are pure:
// aggregating the same snapshots twice yields identical rows.
package aggregator

import (
	"errors"
	"strconv"

	"drivehub-admin-backend/internal/features/reports/models"
)

// ErrNoReports means every per-instructor fetch failed, leaving nothing
// to aggregate. Callers must surface this instead of an empty report.
var ErrNoReports = errors.New("no earnings reports to aggregate")

// NotAvailable is substituted for absent optional fields in export rows.
const NotAvailable = "N/A"

const dateLayout = "2006-01-02"

// SummaryRow is one instructor's totals line on the Summary sheet.
type SummaryRow struct {
	Instructor       string `csv:"instructor"`
	TotalEarnings    string `csv:"total_earnings"`
	TotalLessons     int    `csv:"total_lessons"`
	HourlyRate       string `csv:"hourly_rate"`
	CompletedLessons int    `csv:"completed_lessons"`
	UpcomingLessons  int    `csv:"upcoming_lessons"`
	CancelledLessons int    `csv:"cancelled_lessons"`
	NoShowLessons    int    `csv:"no_show_lessons"`
}

// MonthlyRow is one (instructor, month) line on the Monthly Breakdown
// sheet. Month ordering is whatever the platform supplied.
type MonthlyRow struct {
	Instructor string `csv:"instructor"`
	Month      string `csv:"month"`
	Earnings   string `csv:"earnings"`
	Lessons    int    `csv:"lessons"`
}

// BookingRow is one recent-earning line on the Booking Details sheet.
type BookingRow struct {
	Instructor   string `csv:"instructor"`
	Student      string `csv:"student"`
	StudentEmail string `csv:"student_email"`
	StudentPhone string `csv:"student_phone"`
	LessonDate   string `csv:"lesson_date"`
	DurationMin  int    `csv:"duration_minutes"`
	Amount       string `csv:"amount"`
	Status       string `csv:"status"`
}

// Rows is the flattened form of a multi-instructor earnings report.
type Rows struct {
	Summary  []SummaryRow
	Monthly  []MonthlyRow
	Bookings []BookingRow
}

// Build flattens the given reports, preserving input order. Nil entries
// represent failed fetches and are dropped; if nothing remains, Build
// returns ErrNoReports rather than an empty report.
func Build(reports []*models.DetailedEarningsReport) (*Rows, error) {
	rows := &Rows{}

	for _, report := range reports {
		if report == nil {
			continue
		}
		appendReport(rows, report)
	}

	if len(rows.Summary) == 0 {
		return nil, ErrNoReports
	}
	return rows, nil
}

func appendReport(rows *Rows, r *models.DetailedEarningsReport) {
	rows.Summary = append(rows.Summary, SummaryRow{
		Instructor:       r.InstructorName,
		TotalEarnings:    FormatRand(r.TotalEarnings),
		TotalLessons:     r.TotalLessons,
		HourlyRate:       FormatRand(r.HourlyRate),
		CompletedLessons: r.Breakdown.Completed,
		UpcomingLessons:  r.Breakdown.Upcoming,
		CancelledLessons: r.Breakdown.Cancelled,
		NoShowLessons:    r.Breakdown.NoShow,
	})

	for _, m := range r.Monthly {
		rows.Monthly = append(rows.Monthly, MonthlyRow{
			Instructor: r.InstructorName,
			Month:      m.Month,
			Earnings:   FormatRand(m.Earnings),
			Lessons:    m.Lessons,
		})
	}

	for _, e := range r.Recent {
		rows.Bookings = append(rows.Bookings, BookingRow{
			Instructor:   r.InstructorName,
			Student:      orNA(e.StudentName),
			StudentEmail: orNA(e.StudentEmail),
			StudentPhone: orNA(e.StudentPhone),
			LessonDate:   e.LessonDate.Format(dateLayout),
			DurationMin:  e.DurationMin,
			Amount:       FormatRand(e.Amount),
			Status:       e.Status,
		})
	}
}

// FormatRand renders a currency value as South African Rand with a fixed
// two-decimal representation, e.g. "R450.00".
func FormatRand(v float64) string {
	return "R" + strconv.FormatFloat(v, 'f', 2, 64)
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
