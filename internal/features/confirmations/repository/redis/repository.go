package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"drivehub-admin-backend/internal/features/confirmations/models"
	"drivehub-admin-backend/internal/features/confirmations/repository"
	"drivehub-admin-backend/internal/platform/redis"
)

type confirmationRepository struct {
	client *redis.Client
}

func NewConfirmationRepository(client *redis.Client) repository.Repository {
	return &confirmationRepository{client: client}
}

func key(id string) string {
	return fmt.Sprintf("confirmation:%s", id)
}

func (r *confirmationRepository) Save(ctx context.Context, action *models.PendingAction, ttl time.Duration) error {
	data, err := json.Marshal(action)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key(action.ID), data, ttl).Err()
}

func (r *confirmationRepository) Get(ctx context.Context, id string) (*models.PendingAction, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var action models.PendingAction
	if err := json.Unmarshal(data, &action); err != nil {
		return nil, err
	}

	return &action, nil
}

func (r *confirmationRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, key(id)).Err()
}
