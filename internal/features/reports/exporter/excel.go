package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"drivehub-admin-backend/internal/features/reports/aggregator"
)

// Sheet names of the earnings workbook.
const (
	SheetSummary  = "Summary"
	SheetMonthly  = "Monthly Breakdown"
	SheetBookings = "Booking Details"
)

var summaryHeader = []interface{}{
	"Instructor", "Total Earnings", "Total Lessons", "Hourly Rate",
	"Completed", "Upcoming", "Cancelled", "No Show",
}

var monthlyHeader = []interface{}{"Instructor", "Month", "Earnings", "Lessons"}

var bookingHeader = []interface{}{
	"Instructor", "Student", "Student Email", "Student Phone",
	"Lesson Date", "Duration (min)", "Amount", "Status",
}

// WriteXLSX renders the aggregated rows as a multi-sheet workbook with a
// bold header row and an auto-filter range per sheet.
func WriteXLSX(w io.Writer, rows *aggregator.Rows) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, SheetSummary, summaryHeader, summaryCells(rows.Summary)); err != nil {
		return err
	}
	if err := writeSheet(f, SheetMonthly, monthlyHeader, monthlyCells(rows.Monthly)); err != nil {
		return err
	}
	if err := writeSheet(f, SheetBookings, bookingHeader, bookingCells(rows.Bookings)); err != nil {
		return err
	}

	// Drop the implicit default sheet and land the reader on the summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(SheetSummary)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, header []interface{}, body [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	for i, row := range body {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", lastHeaderCell, boldStyle); err != nil {
		return err
	}

	if len(body) > 0 {
		lastCell, err := excelize.CoordinatesToCellName(len(header), len(body)+1)
		if err != nil {
			return err
		}
		if err := f.AutoFilter(name, fmt.Sprintf("A1:%s", lastCell), nil); err != nil {
			return fmt.Errorf("failed to set auto-filter on %s: %w", name, err)
		}
	}

	return nil
}

func summaryCells(rows []aggregator.SummaryRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.Instructor, r.TotalEarnings, r.TotalLessons, r.HourlyRate,
			r.CompletedLessons, r.UpcomingLessons, r.CancelledLessons, r.NoShowLessons,
		})
	}
	return out
}

func monthlyCells(rows []aggregator.MonthlyRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{r.Instructor, r.Month, r.Earnings, r.Lessons})
	}
	return out
}

func bookingCells(rows []aggregator.BookingRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.Instructor, r.Student, r.StudentEmail, r.StudentPhone,
			r.LessonDate, r.DurationMin, r.Amount, r.Status,
		})
	}
	return out
}
