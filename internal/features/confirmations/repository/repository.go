package repository

import (
	"context"
	"errors"
	"time"

	"drivehub-admin-backend/internal/features/confirmations/models"
)

// ErrNotFound means the pending action does not exist or its TTL lapsed.
var ErrNotFound = errors.New("pending action not found")

// Repository stores pending actions awaiting confirmation. Records are
// transient: the TTL is the confirmation window.
type Repository interface {
	Save(ctx context.Context, action *models.PendingAction, ttl time.Duration) error
	Get(ctx context.Context, id string) (*models.PendingAction, error)
	Delete(ctx context.Context, id string) error
}
