// Package users keeps transient user profiles keyed by phone number and
// runs eligibility checks against them.
package users

import (
	"context"
	"sync"

	"himaya-assistant/internal/common/config"
	"himaya-assistant/internal/models"

	"github.com/redis/go-redis/v9"
)

// Repository is the profile store. Implementations must be safe for
// concurrent use.
type Repository interface {
	Get(ctx context.Context, phone string) (*models.User, bool, error)
	Put(ctx context.Context, user *models.User) error
	Has(ctx context.Context, phone string) (bool, error)
}

// NewRepository returns the store selected by cfg. client is only used for
// the redis store.
func NewRepository(cfg config.UsersConfig, client *redis.Client) Repository {
	if cfg.Store == config.StoreRedis && client != nil {
		return NewRedisRepository(client, cfg.KeyPrefix, cfg.UserTTL())
	}
	return NewMemoryRepository()
}

// MemoryRepository keeps profiles in process memory. Values are copied in
// and out so callers never share a record.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User)}
}

func (r *MemoryRepository) Get(_ context.Context, phone string) (*models.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[phone]
	if !ok {
		return nil, false, nil
	}
	return &u, true, nil
}

func (r *MemoryRepository) Put(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.Phone] = *user
	return nil
}

func (r *MemoryRepository) Has(_ context.Context, phone string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[phone]
	return ok, nil
}

// Len returns the number of stored profiles.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
