package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"drivehub-admin-backend/internal/common/cache"
	"drivehub-admin-backend/internal/common/errors"
	"drivehub-admin-backend/internal/features/confirmations/models"
	"drivehub-admin-backend/internal/features/confirmations/repository"
	"drivehub-admin-backend/internal/features/directory/filter"
	directorymodels "drivehub-admin-backend/internal/features/directory/models"
	reportsmodels "drivehub-admin-backend/internal/features/reports/models"
)

// Gateway is the slice of the booking platform API the gate needs.
type Gateway interface {
	ListUsers(ctx context.Context, role, status string) ([]directorymodels.UserRecord, error)
	GetUser(ctx context.Context, id int64) (*directorymodels.UserRecord, error)
	UpdateUserStatus(ctx context.Context, id int64, status string) error
	DeleteAdmin(ctx context.Context, id int64) error
	DeleteInstructor(ctx context.Context, id int64) error
	DeleteStudent(ctx context.Context, id int64) error
	GetInstructorBookingSummary(ctx context.Context, id int64) (*reportsmodels.BookingSummary, error)
	GetStudentBookingSummary(ctx context.Context, id int64) (*reportsmodels.BookingSummary, error)
}

type Service interface {
	Request(ctx context.Context, actorID int64, req models.ActionRequest) (*models.PendingAction, error)
	Get(ctx context.Context, id string) (*models.PendingAction, error)
	Confirm(ctx context.Context, id string) (*models.PendingAction, error)
	Cancel(ctx context.Context, id string) error
}

type service struct {
	gw     Gateway
	repo   repository.Repository
	cache  cache.Cache
	ttl    time.Duration
	logger zerolog.Logger
}

func NewService(gw Gateway, repo repository.Repository, c cache.Cache, ttl time.Duration) Service {
	return &service{
		gw:     gw,
		repo:   repo,
		cache:  c,
		ttl:    ttl,
		logger: log.With().Str("component", "confirmations").Logger(),
	}
}

// Request stages an action for confirmation. The bootstrap-admin
// protection rules are evaluated first, against a fresh admin listing, so
// a refused action never reaches the awaiting-confirmation state.
func (s *service) Request(ctx context.Context, actorID int64, req models.ActionRequest) (*models.PendingAction, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	target, err := s.gw.GetUser(ctx, req.TargetID)
	if err != nil {
		return nil, err
	}

	if err := validateTargetRole(req.Type, *target); err != nil {
		return nil, err
	}

	if err := s.checkProtection(ctx, actorID, *target, req); err != nil {
		return nil, err
	}

	action := &models.PendingAction{
		ID:          uuid.New().String(),
		Type:        req.Type,
		Target:      *target,
		NewStatus:   req.NewStatus,
		RequestedBy: actorID,
		CreatedAt:   time.Now(),
	}

	// Deletions carry the upstream booking impact so the confirming admin
	// sees what the removal affects.
	switch req.Type {
	case models.ActionDeleteInstructor:
		if summary, err := s.gw.GetInstructorBookingSummary(ctx, target.ID); err == nil {
			action.BookingSummary = summary
		}
	case models.ActionDeleteStudent:
		if summary, err := s.gw.GetStudentBookingSummary(ctx, target.ID); err == nil {
			action.BookingSummary = summary
		}
	}

	if err := s.repo.Save(ctx, action, s.ttl); err != nil {
		return nil, errors.NewCacheError("save pending action", err)
	}

	s.logger.Info().
		Str("confirmation_id", action.ID).
		Str("type", string(action.Type)).
		Int64("target_id", target.ID).
		Int64("requested_by", actorID).
		Msg("Action staged for confirmation")

	return action, nil
}

// checkProtection enforces the bootstrap-admin rules: the original admin
// (minimum-ID admin account, recomputed from a fresh listing every time)
// cannot be deleted through this flow at all, and cannot suspend or
// deactivate itself.
func (s *service) checkProtection(ctx context.Context, actorID int64, target directorymodels.UserRecord, req models.ActionRequest) error {
	if target.Role != directorymodels.RoleAdmin {
		return nil
	}

	admins, err := s.gw.ListUsers(ctx, directorymodels.RoleAdmin, "")
	if err != nil {
		return err
	}
	originalID, found := filter.OriginalAdminID(admins)
	if !found || target.ID != originalID {
		return nil
	}

	if req.Type == models.ActionDeleteAdmin {
		return errors.NewProtectedAdminError("The original admin account cannot be deleted")
	}

	demoting := req.NewStatus == directorymodels.StatusSuspended ||
		req.NewStatus == directorymodels.StatusInactive
	if req.Type == models.ActionStatusChange && demoting && actorID == target.ID {
		return errors.NewProtectedAdminError("The original admin account cannot suspend itself")
	}

	return nil
}

func (s *service) Get(ctx context.Context, id string) (*models.PendingAction, error) {
	action, err := s.repo.Get(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NewConfirmationNotFoundError(id)
		}
		return nil, errors.NewCacheError("get pending action", err)
	}
	return action, nil
}

// Confirm executes the staged action against the booking platform. The
// pending record is consumed either way; on gateway failure no local
// state is assumed to have changed and the error is surfaced as-is.
func (s *service) Confirm(ctx context.Context, id string) (*models.PendingAction, error) {
	action, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("confirmation_id", id).Msg("Failed to delete pending action")
	}

	if err := s.dispatch(ctx, action); err != nil {
		return nil, err
	}

	if err := cache.InvalidateDirectory(ctx, s.cache); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to invalidate directory cache")
	}

	s.logger.Info().
		Str("confirmation_id", action.ID).
		Str("type", string(action.Type)).
		Int64("target_id", action.Target.ID).
		Msg("Action confirmed and executed")

	return action, nil
}

func (s *service) dispatch(ctx context.Context, action *models.PendingAction) error {
	switch action.Type {
	case models.ActionStatusChange:
		return s.gw.UpdateUserStatus(ctx, action.Target.ID, action.NewStatus)
	case models.ActionDeleteAdmin:
		return s.gw.DeleteAdmin(ctx, action.Target.ID)
	case models.ActionDeleteInstructor:
		return s.gw.DeleteInstructor(ctx, action.Target.ID)
	case models.ActionDeleteStudent:
		return s.gw.DeleteStudent(ctx, action.Target.ID)
	default:
		return errors.New(errors.ErrCodeInternal, fmt.Sprintf("Unknown action type: %s", action.Type))
	}
}

func (s *service) Cancel(ctx context.Context, id string) error {
	// Get first so cancelling an unknown or expired action is an error
	// the console can show.
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// validateTargetRole rejects deletions aimed at a record of the wrong
// role before anything is staged.
func validateTargetRole(actionType models.ActionType, target directorymodels.UserRecord) error {
	wantRole := ""
	switch actionType {
	case models.ActionDeleteAdmin:
		wantRole = directorymodels.RoleAdmin
	case models.ActionDeleteInstructor:
		wantRole = directorymodels.RoleInstructor
	case models.ActionDeleteStudent:
		wantRole = directorymodels.RoleStudent
	default:
		return nil
	}

	if target.Role != wantRole {
		return errors.New(errors.ErrCodeConflict,
			fmt.Sprintf("Action %s targets a %s account", actionType, target.Role))
	}
	return nil
}

func validateRequest(req models.ActionRequest) error {
	fields := make(map[string]string)

	valid := false
	for _, t := range models.ValidActionTypes {
		if req.Type == t {
			valid = true
			break
		}
	}
	if !valid {
		fields["type"] = fmt.Sprintf("Unknown action type: %s", req.Type)
	}

	if req.TargetID <= 0 {
		fields["target_id"] = "Target user ID is required"
	}

	if req.Type == models.ActionStatusChange {
		statusValid := false
		for _, st := range directorymodels.ValidStatuses {
			if req.NewStatus == st {
				statusValid = true
				break
			}
		}
		if !statusValid {
			fields["new_status"] = "A valid new status is required for a status change"
		}
	}

	if len(fields) > 0 {
		return errors.NewValidationError(fields)
	}
	return nil
}
