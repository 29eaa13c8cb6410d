package models

import (
	"time"

	directorymodels "drivehub-admin-backend/internal/features/directory/models"
	reportsmodels "drivehub-admin-backend/internal/features/reports/models"
)

// ActionType tags the destructive or status-changing actions that must
// pass through the confirmation gate. One tagged type replaces the old
// console's five parallel modal state slots.
type ActionType string

const (
	ActionStatusChange     ActionType = "status_change"
	ActionDeleteAdmin      ActionType = "delete_admin"
	ActionDeleteInstructor ActionType = "delete_instructor"
	ActionDeleteStudent    ActionType = "delete_student"
)

// ValidActionTypes lists every action the gate accepts.
var ValidActionTypes = []ActionType{
	ActionStatusChange,
	ActionDeleteAdmin,
	ActionDeleteInstructor,
	ActionDeleteStudent,
}

// IsDeletion reports whether the action removes an account or profile.
func (t ActionType) IsDeletion() bool {
	return t == ActionDeleteAdmin || t == ActionDeleteInstructor || t == ActionDeleteStudent
}

// ActionRequest asks the gate to stage an action for confirmation.
type ActionRequest struct {
	Type      ActionType `json:"type" enums:"status_change,delete_admin,delete_instructor,delete_student"`
	TargetID  int64      `json:"target_id"`
	NewStatus string     `json:"new_status,omitempty" enums:"active,inactive,suspended"`
}

// PendingAction is one staged action awaiting explicit confirmation. A
// stored record means awaiting-confirmation; confirm or cancel (or the
// TTL) removes it. Nothing has happened upstream until confirm.
type PendingAction struct {
	ID          string                     `json:"id"`
	Type        ActionType                 `json:"type"`
	Target      directorymodels.UserRecord `json:"target"`
	NewStatus   string                     `json:"new_status,omitempty"`
	RequestedBy int64                      `json:"requested_by"`
	// BookingSummary shows the impact of a deletion before it is
	// confirmed. Only set for instructor/student deletions.
	BookingSummary *reportsmodels.BookingSummary `json:"booking_summary,omitempty"`
	CreatedAt      time.Time                     `json:"created_at"`
}
