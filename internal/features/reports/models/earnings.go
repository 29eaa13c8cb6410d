package models

import "time"

// InstructorSummary is the per-instructor aggregate shown on the earnings
// overview screen. Read-only, refreshed per screen load.
type InstructorSummary struct {
	InstructorID     int64   `json:"instructor_id"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	TotalEarnings    float64 `json:"total_earnings"`
	CompletedLessons int     `json:"completed_lessons"`
	HourlyRate       float64 `json:"hourly_rate"`
	BookingFee       float64 `json:"booking_fee"`
	Rating           float64 `json:"rating"`
	Verified         bool    `json:"verified"`
	Available        bool    `json:"available"`
}

// LessonStatusBreakdown counts one instructor's lessons by outcome.
type LessonStatusBreakdown struct {
	Completed int `json:"completed"`
	Upcoming  int `json:"upcoming"`
	Cancelled int `json:"cancelled"`
	NoShow    int `json:"no_show"`
}

// MonthlyEarning is one point of the monthly series. The platform decides
// the month ordering; the console preserves it.
type MonthlyEarning struct {
	Month    string  `json:"month" example:"Jan 2026"`
	Earnings float64 `json:"earnings"`
	Lessons  int     `json:"lessons"`
}

// RecentEarning is one transaction-level entry of the bounded
// recent-activity list. Student contact fields may be absent.
type RecentEarning struct {
	StudentName  string    `json:"student_name,omitempty"`
	StudentEmail string    `json:"student_email,omitempty"`
	StudentPhone string    `json:"student_phone,omitempty"`
	LessonDate   time.Time `json:"lesson_date"`
	DurationMin  int       `json:"duration_minutes"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status" example:"completed"`
}

// DetailedEarningsReport is one instructor's full report, treated as an
// immutable snapshot fetched on demand.
type DetailedEarningsReport struct {
	InstructorID   int64                 `json:"instructor_id"`
	InstructorName string                `json:"instructor_name"`
	TotalEarnings  float64               `json:"total_earnings"`
	TotalLessons   int                   `json:"total_lessons"`
	HourlyRate     float64               `json:"hourly_rate"`
	Breakdown      LessonStatusBreakdown `json:"lesson_breakdown"`
	Monthly        []MonthlyEarning      `json:"monthly_earnings"`
	Recent         []RecentEarning       `json:"recent_earnings"`
}

// RevenueStats is the platform-wide revenue aggregate for the analytics
// screen.
type RevenueStats struct {
	TotalRevenue   float64             `json:"total_revenue"`
	TotalBookings  int                 `json:"total_bookings"`
	ActiveStudents int                 `json:"active_students"`
	AverageLesson  float64             `json:"average_lesson_price"`
	MonthlyRevenue []MonthlyEarning    `json:"monthly_revenue"`
	TopInstructors []InstructorSummary `json:"top_instructors,omitempty"`
}

// BookingSummary is the pre-delete impact check for an instructor or
// student: what bookings would be affected by removing the account.
type BookingSummary struct {
	UpcomingBookings  int     `json:"upcoming_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	OutstandingAmount float64 `json:"outstanding_amount"`
}

// ScheduleEntry is one recurring availability slot of an instructor.
type ScheduleEntry struct {
	DayOfWeek string `json:"day_of_week" example:"monday"`
	StartTime string `json:"start_time" example:"08:00"`
	EndTime   string `json:"end_time" example:"17:00"`
}

// TimeOffEntry is one blocked-out period of an instructor.
type TimeOffEntry struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason,omitempty"`
}

// BookingEntry is one booked lesson of an instructor.
type BookingEntry struct {
	BookingID   int64     `json:"booking_id"`
	StudentName string    `json:"student_name"`
	LessonDate  time.Time `json:"lesson_date"`
	DurationMin int       `json:"duration_minutes"`
	Status      string    `json:"status"`
}

// InstructorOverview combines the three independent per-instructor
// fetches the schedule screen needs.
type InstructorOverview struct {
	Schedule []ScheduleEntry `json:"schedule"`
	TimeOff  []TimeOffEntry  `json:"time_off"`
	Bookings []BookingEntry  `json:"bookings"`
}
