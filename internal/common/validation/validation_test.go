package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateAdminForm() CreateAdminForm {
	return CreateAdminForm{
		FirstName:       "John",
		LastName:        "Doe",
		Email:           "admin@x.com",
		Phone:           "0821234567",
		IDNumber:        "9001015009087",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestCreateAdminFormValid(t *testing.T) {
	errs := validCreateAdminForm().Validate(6)
	assert.Empty(t, errs)
}

func TestCreateAdminFormRequiredFields(t *testing.T) {
	form := CreateAdminForm{}
	errs := form.Validate(6)

	for _, field := range []string{"first_name", "last_name", "email", "phone", "id_number", "password", "confirm_password"} {
		assert.Contains(t, errs, field)
	}
}

func TestCreateAdminFormEmailMustContainAt(t *testing.T) {
	form := validCreateAdminForm()
	form.Email = "not-an-email"

	errs := form.Validate(6)
	require.Contains(t, errs, "email")
}

func TestCreateAdminFormShortPassword(t *testing.T) {
	form := validCreateAdminForm()
	form.Password = "abc"
	form.ConfirmPassword = "abc"

	errs := form.Validate(6)
	require.Contains(t, errs, "password")
	assert.Equal(t, "Password must be at least 6 characters", errs["password"])
}

func TestCreateAdminFormPasswordMismatch(t *testing.T) {
	form := validCreateAdminForm()
	form.ConfirmPassword = "different1"

	errs := form.Validate(6)
	require.Contains(t, errs, "confirm_password")
	assert.Equal(t, "Passwords do not match", errs["confirm_password"])
}

func TestCreateAdminFormConfiguredMinimum(t *testing.T) {
	form := validCreateAdminForm()
	form.Password = "seven77"
	form.ConfirmPassword = "seven77"

	errs := form.Validate(8)
	require.Contains(t, errs, "password")
	assert.Equal(t, "Password must be at least 8 characters", errs["password"])
}

func TestResetPasswordFormShortPassword(t *testing.T) {
	form := ResetPasswordForm{NewPassword: "abc", ConfirmPassword: "abc"}

	errs := form.Validate(6)
	require.Contains(t, errs, "new_password")
	assert.Equal(t, "Password must be at least 6 characters", errs["new_password"])
}

func TestResetPasswordFormValid(t *testing.T) {
	form := ResetPasswordForm{NewPassword: "secret1", ConfirmPassword: "secret1"}
	assert.Empty(t, form.Validate(6))
}

func TestResetPasswordFormZeroMinimumFallsBack(t *testing.T) {
	form := ResetPasswordForm{NewPassword: "abc", ConfirmPassword: "abc"}

	errs := form.Validate(0)
	require.Contains(t, errs, "new_password")
	assert.Equal(t, "Password must be at least 6 characters", errs["new_password"])
}

func TestUpdateProfileFormOptionalFields(t *testing.T) {
	assert.Empty(t, UpdateProfileForm{}.Validate())

	form := UpdateProfileForm{Email: "no-at-sign"}
	errs := form.Validate()
	require.Contains(t, errs, "email")
}
