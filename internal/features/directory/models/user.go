package models

import "time"

// User roles as partitioned by the console's directory tabs.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

// Account statuses as reported by the booking platform.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// ValidRoles lists the roles the directory can be filtered by.
var ValidRoles = []string{RoleAdmin, RoleInstructor, RoleStudent}

// ValidStatuses lists the statuses an account can be moved to.
var ValidStatuses = []string{StatusActive, StatusInactive, StatusSuspended}

// UserRecord is one account as returned by the booking platform. The
// platform owns the record; the console never mutates it locally.
type UserRecord struct {
	ID         int64      `json:"id" example:"42"`
	Email      string     `json:"email" example:"jane@drivehub.co.za"`
	Phone      string     `json:"phone" example:"0821234567"`
	FullName   string     `json:"full_name" example:"Jane Mokoena"`
	Role       string     `json:"role" enums:"admin,instructor,student"`
	Status     string     `json:"status" enums:"active,inactive,suspended"`
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	IDNumber   string     `json:"id_number,omitempty" example:"9001015009087"`
	BookingFee *float64   `json:"booking_fee,omitempty"` // instructors only
}

// IsRole reports whether the record belongs to the given directory tab.
func (u UserRecord) IsRole(role string) bool {
	return u.Role == role
}

// CreateAdminRequest is the payload forwarded to the booking platform
// when a new admin account is created. Accounts are active immediately;
// there is no verification step.
type CreateAdminRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IDNumber  string `json:"id_number"`
	Address   string `json:"address"`
	Password  string `json:"password"`
}

// DefaultAddress is substituted when the creation form carries no address.
const DefaultAddress = "Not provided"

// UpdateUserRequest carries the editable profile fields. Empty fields are
// left untouched by the platform.
type UpdateUserRequest struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// ResetPasswordRequest is forwarded to the platform's password reset
// endpoint after local validation passes.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// StatusUpdateRequest moves an account to a new status.
type StatusUpdateRequest struct {
	Status string `json:"status" enums:"active,inactive,suspended"`
}

// AdminSettings is the platform-wide configuration shown on the admin
// settings screen. Read-only from the console's perspective.
type AdminSettings struct {
	DefaultBookingFee  float64 `json:"default_booking_fee"`
	DefaultHourlyRate  float64 `json:"default_hourly_rate"`
	Currency           string  `json:"currency" example:"ZAR"`
	SupportEmail       string  `json:"support_email"`
	AllowRegistrations bool    `json:"allow_registrations"`
}
