package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "himaya-assistant/internal/common/errors"
	"himaya-assistant/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisRepository stores profiles as JSON under prefix+phone. A non-zero
// ttl makes profiles expire, keeping the store transient.
type RedisRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisRepository(client *redis.Client, prefix string, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisRepository) key(phone string) string {
	return r.prefix + phone
}

func (r *RedisRepository) Get(ctx context.Context, phone string) (*models.User, bool, error) {
	val, err := r.client.Get(ctx, r.key(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.NewStoreUnavailableError(err)
	}

	var u models.User
	if err := json.Unmarshal([]byte(val), &u); err != nil {
		return nil, false, apperrors.NewStoreUnavailableError(fmt.Errorf("decode user %s: %w", phone, err))
	}
	return &u, true, nil
}

func (r *RedisRepository) Put(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user %s: %w", user.Phone, err)
	}
	if err := r.client.Set(ctx, r.key(user.Phone), data, r.ttl).Err(); err != nil {
		return apperrors.NewStoreUnavailableError(err)
	}
	return nil
}

func (r *RedisRepository) Has(ctx context.Context, phone string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(phone)).Result()
	if err != nil {
		return false, apperrors.NewStoreUnavailableError(err)
	}
	return n > 0, nil
}
