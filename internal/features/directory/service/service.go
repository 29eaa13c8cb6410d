package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"drivehub-admin-backend/internal/common/cache"
	"drivehub-admin-backend/internal/common/errors"
	"drivehub-admin-backend/internal/common/validation"
	"drivehub-admin-backend/internal/features/directory/filter"
	"drivehub-admin-backend/internal/features/directory/models"
)

// Gateway is the slice of the booking platform API the directory needs.
type Gateway interface {
	ListUsers(ctx context.Context, role, status string) ([]models.UserRecord, error)
	CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (*models.UserRecord, error)
	GetAdminSettings(ctx context.Context) (*models.AdminSettings, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.UserRecord, error)
	ResetPassword(ctx context.Context, id int64, newPassword string) error
}

type Service interface {
	ListUsers(ctx context.Context, role, status, search string) ([]models.UserRecord, error)
	CreateAdmin(ctx context.Context, form validation.CreateAdminForm) (*models.UserRecord, error)
	UpdateUser(ctx context.Context, id int64, form validation.UpdateProfileForm) (*models.UserRecord, error)
	ResetPassword(ctx context.Context, id int64, form validation.ResetPasswordForm) error
	AdminSettings(ctx context.Context) (*models.AdminSettings, error)
}

type service struct {
	gw          Gateway
	cache       cache.Cache
	cacheTTL    time.Duration
	minPassword int
	logger      zerolog.Logger
}

func NewService(gw Gateway, c cache.Cache, cacheTTL time.Duration, passwordMinLength int) Service {
	return &service{
		gw:          gw,
		cache:       c,
		cacheTTL:    cacheTTL,
		minPassword: passwordMinLength,
		logger:      log.With().Str("component", "directory").Logger(),
	}
}

// ListUsers fetches the role tab's records (through a short-TTL cache of
// the unfiltered gateway response) and applies search and ordering
// in-process, so identical fetches are shared across search queries.
func (s *service) ListUsers(ctx context.Context, role, status, search string) ([]models.UserRecord, error) {
	records, err := s.fetchUsers(ctx, role, status)
	if err != nil {
		return nil, err
	}
	return filter.Apply(records, search, status, role), nil
}

func (s *service) fetchUsers(ctx context.Context, role, status string) ([]models.UserRecord, error) {
	key := cache.DirectoryKey(role, status)

	var cached []models.UserRecord
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	records, err := s.gw.ListUsers(ctx, role, status)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, records, s.cacheTTL); err != nil {
		// A cold cache is not worth failing the listing over.
		s.logger.Warn().Err(err).Str("key", key).Msg("Failed to cache directory listing")
	}
	return records, nil
}

// CreateAdmin validates the creation form locally and forwards it to the
// platform. New admin accounts are active immediately; there is no
// verification step. A missing address becomes the "Not provided"
// placeholder the platform expects.
func (s *service) CreateAdmin(ctx context.Context, form validation.CreateAdminForm) (*models.UserRecord, error) {
	if fieldErrs := form.Validate(s.minPassword); len(fieldErrs) > 0 {
		return nil, errors.NewValidationError(fieldErrs)
	}

	address := form.Address
	if address == "" {
		address = models.DefaultAddress
	}

	created, err := s.gw.CreateAdmin(ctx, models.CreateAdminRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		IDNumber:  form.IDNumber,
		Address:   address,
		Password:  form.Password,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDirectory(ctx)
	return created, nil
}

func (s *service) UpdateUser(ctx context.Context, id int64, form validation.UpdateProfileForm) (*models.UserRecord, error) {
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		return nil, errors.NewValidationError(fieldErrs)
	}

	updated, err := s.gw.UpdateUser(ctx, id, models.UpdateUserRequest{
		FullName: form.FullName,
		Email:    form.Email,
		Phone:    form.Phone,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDirectory(ctx)
	return updated, nil
}

func (s *service) ResetPassword(ctx context.Context, id int64, form validation.ResetPasswordForm) error {
	if fieldErrs := form.Validate(s.minPassword); len(fieldErrs) > 0 {
		return errors.NewValidationError(fieldErrs)
	}

	return s.gw.ResetPassword(ctx, id, form.NewPassword)
}

func (s *service) AdminSettings(ctx context.Context) (*models.AdminSettings, error) {
	return s.gw.GetAdminSettings(ctx)
}

func (s *service) invalidateDirectory(ctx context.Context) {
	if err := cache.InvalidateDirectory(ctx, s.cache); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to invalidate directory cache")
	}
}
