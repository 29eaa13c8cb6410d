// Package validation holds the per-form field checks used by the admin
// console. Each form validates into a field → message map; an empty map
// means the form may be submitted.
package validation

import (
	"fmt"
	"strings"
)

const (
	MaxFirstNameLength = 64
	MaxLastNameLength  = 64
	MaxFullNameLength  = 128
	MaxEmailLength     = 254
	MaxPhoneLength     = 20
)

// DefaultPasswordMinLength is used when no configured minimum is supplied.
// The console historically disagreed with itself (6 on some screens, 8 on
// the profile screen); a single configurable minimum replaces both.
const DefaultPasswordMinLength = 6

// CreateAdminForm mirrors the admin-creation screen.
type CreateAdminForm struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	IDNumber        string `json:"id_number"`
	Address         string `json:"address"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate returns the field error map for the form.
func (f CreateAdminForm) Validate(passwordMinLength int) map[string]string {
	errs := make(map[string]string)

	requireField(errs, "first_name", f.FirstName, "First name is required")
	requireField(errs, "last_name", f.LastName, "Last name is required")
	requireField(errs, "phone", f.Phone, "Phone number is required")
	requireField(errs, "id_number", f.IDNumber, "ID number is required")

	validateEmail(errs, f.Email)
	validatePassword(errs, "password", f.Password, passwordMinLength)
	validatePasswordMatch(errs, f.Password, f.ConfirmPassword)

	return errs
}

// ResetPasswordForm mirrors the password reset screen.
type ResetPasswordForm struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (f ResetPasswordForm) Validate(passwordMinLength int) map[string]string {
	errs := make(map[string]string)

	validatePassword(errs, "new_password", f.NewPassword, passwordMinLength)
	validatePasswordMatch(errs, f.NewPassword, f.ConfirmPassword)

	return errs
}

// UpdateProfileForm mirrors the user detail edit screen. Zero-value fields
// are left untouched upstream, so only present values are checked.
type UpdateProfileForm struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (f UpdateProfileForm) Validate() map[string]string {
	errs := make(map[string]string)

	if f.FullName != "" && len(f.FullName) > MaxFullNameLength {
		errs["full_name"] = fmt.Sprintf("Full name cannot exceed %d characters", MaxFullNameLength)
	}
	if f.Email != "" {
		validateEmail(errs, f.Email)
	}
	if f.Phone != "" && len(f.Phone) > MaxPhoneLength {
		errs["phone"] = fmt.Sprintf("Phone number cannot exceed %d characters", MaxPhoneLength)
	}

	return errs
}

func requireField(errs map[string]string, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = message
	}
}

func validateEmail(errs map[string]string, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs["email"] = "Email is required"
		return
	}
	if !strings.Contains(email, "@") {
		errs["email"] = "Email must be a valid email address"
		return
	}
	if len(email) > MaxEmailLength {
		errs["email"] = fmt.Sprintf("Email cannot exceed %d characters", MaxEmailLength)
	}
}

func validatePassword(errs map[string]string, field, password string, minLength int) {
	if minLength <= 0 {
		minLength = DefaultPasswordMinLength
	}
	if password == "" {
		errs[field] = "Password is required"
		return
	}
	if len(password) < minLength {
		errs[field] = fmt.Sprintf("Password must be at least %d characters", minLength)
	}
}

func validatePasswordMatch(errs map[string]string, password, confirm string) {
	if _, ok := errs["confirm_password"]; ok {
		return
	}
	if confirm == "" {
		errs["confirm_password"] = "Password confirmation is required"
		return
	}
	if password != confirm {
		errs["confirm_password"] = "Passwords do not match"
	}
}
