package exporter

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"drivehub-admin-backend/internal/features/reports/aggregator"
)

// WritePDF renders the aggregated rows as a paginated document: one
// summary table followed by the monthly breakdown and booking details.
// fpdf handles the page breaks; the data is bounded so rendering stays
// synchronous.
func WritePDF(w io.Writer, rows *aggregator.Rows) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Instructor Earnings Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writePDFSection(pdf, "Summary", []float64{50, 28, 22, 25, 22, 22},
		[]string{"Instructor", "Earnings", "Lessons", "Rate", "Completed", "Cancelled"},
		summaryPDFRows(rows.Summary))

	writePDFSection(pdf, "Monthly Breakdown", []float64{60, 40, 40, 30},
		[]string{"Instructor", "Month", "Earnings", "Lessons"},
		monthlyPDFRows(rows.Monthly))

	writePDFSection(pdf, "Booking Details", []float64{35, 35, 45, 25, 25, 25},
		[]string{"Instructor", "Student", "Email", "Date", "Amount", "Status"},
		bookingPDFRows(rows.Bookings))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

func writePDFSection(pdf *fpdf.Fpdf, title string, widths []float64, header []string, body [][]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(body) == 0 {
		pdf.CellFormat(0, 7, "No data", "", 1, "L", false, 0, "")
	}
	for _, row := range body {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

func summaryPDFRows(rows []aggregator.SummaryRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Instructor, r.TotalEarnings, fmt.Sprintf("%d", r.TotalLessons),
			r.HourlyRate, fmt.Sprintf("%d", r.CompletedLessons), fmt.Sprintf("%d", r.CancelledLessons),
		})
	}
	return out
}

func monthlyPDFRows(rows []aggregator.MonthlyRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Instructor, r.Month, r.Earnings, fmt.Sprintf("%d", r.Lessons)})
	}
	return out
}

func bookingPDFRows(rows []aggregator.BookingRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Instructor, r.Student, r.StudentEmail, r.LessonDate, r.Amount, r.Status,
		})
	}
	return out
}
