package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"drivehub-admin-backend/internal/features/reports/aggregator"
)

func sampleRows() *aggregator.Rows {
	return &aggregator.Rows{
		Summary: []aggregator.SummaryRow{
			{
				Instructor:       "Sipho Dlamini",
				TotalEarnings:    "R12500.50",
				TotalLessons:     40,
				HourlyRate:       "R450.00",
				CompletedLessons: 35,
				UpcomingLessons:  3,
				CancelledLessons: 1,
				NoShowLessons:    1,
			},
			{Instructor: "Anna Botha", TotalEarnings: "R800.00", TotalLessons: 2, HourlyRate: "R400.00"},
		},
		Monthly: []aggregator.MonthlyRow{
			{Instructor: "Sipho Dlamini", Month: "Feb 2026", Earnings: "R6000.00", Lessons: 18},
		},
		Bookings: []aggregator.BookingRow{
			{
				Instructor:   "Sipho Dlamini",
				Student:      "Thabo Nkosi",
				StudentEmail: "thabo@example.com",
				StudentPhone: "N/A",
				LessonDate:   "2026-02-10",
				DurationMin:  60,
				Amount:       "R450.00",
				Status:       "completed",
			},
		},
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleRows()))
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{SheetSummary, SheetMonthly, SheetBookings}, f.GetSheetList())

	cell, err := f.GetCellValue(SheetSummary, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Sipho Dlamini", cell)

	cell, err = f.GetCellValue(SheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "R12500.50", cell)

	cell, err = f.GetCellValue(SheetMonthly, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Feb 2026", cell)

	cell, err = f.GetCellValue(SheetBookings, "D2")
	require.NoError(t, err)
	assert.Equal(t, "N/A", cell)
}

func TestWriteXLSXEmptySections(t *testing.T) {
	rows := &aggregator.Rows{
		Summary: []aggregator.SummaryRow{{Instructor: "Anna Botha", TotalEarnings: "R0.00", HourlyRate: "R0.00"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, rows))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	// Header rows exist even when a sheet has no body.
	cell, err := f.GetCellValue(SheetMonthly, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Instructor", cell)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleRows()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteCSVSections(t *testing.T) {
	rows := sampleRows()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows, SectionSummary))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "instructor,total_earnings,total_lessons,hourly_rate,completed_lessons,upcoming_lessons,cancelled_lessons,no_show_lessons", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "Sipho Dlamini")
	assert.Contains(t, lines[1], "R12500.50")

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, rows, SectionBookings))
	assert.Contains(t, buf.String(), "thabo@example.com")

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, rows, ""))
	assert.Contains(t, buf.String(), "total_earnings")
}

func TestWriteCSVUnknownSection(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, sampleRows(), "pivot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown csv section")
}
