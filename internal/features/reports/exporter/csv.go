package exporter

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"drivehub-admin-backend/internal/features/reports/aggregator"
)

// CSV sections; CSV has no sheets, so one export carries one section.
const (
	SectionSummary  = "summary"
	SectionMonthly  = "monthly"
	SectionBookings = "bookings"
)

// WriteCSV renders one section of the aggregated rows as CSV, headers
// taken from the row struct tags.
func WriteCSV(w io.Writer, rows *aggregator.Rows, section string) error {
	switch section {
	case SectionSummary, "":
		return gocsv.Marshal(&rows.Summary, w)
	case SectionMonthly:
		return gocsv.Marshal(&rows.Monthly, w)
	case SectionBookings:
		return gocsv.Marshal(&rows.Bookings, w)
	default:
		return fmt.Errorf("unknown csv section: %s", section)
	}
}
