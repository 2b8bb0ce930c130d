// Package session caches the authenticated user's profile for the lifetime
// of a session. The database stays the source of truth; the cache is filled
// on login, invalidated on logout and only ever updated from balances the
// database has already committed.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/upayanmazumder/TheArenaX/internal/apperrors"
	"github.com/upayanmazumder/TheArenaX/internal/user"
)

var ctx = context.Background()

type Store interface {
	Get(userID uint) (*user.Profile, error)
	Put(userID uint, profile *user.Profile) error
	Invalidate(userID uint) error
	UpdateWalletBalance(userID uint, newBalance int) error
}

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func profileKey(userID uint) string {
	return fmt.Sprintf("session:profile:%d", userID)
}

func (s *RedisStore) Get(userID uint) (*user.Profile, error) {
	val, err := s.rdb.Get(ctx, profileKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, apperrors.NewAppError(500, "Error getting session profile", err)
	}

	var profile user.Profile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		return nil, apperrors.NewAppError(500, "Error unmarshalling session profile", err)
	}

	return &profile, nil
}

func (s *RedisStore) Put(userID uint, profile *user.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return apperrors.NewAppError(500, "Error serializing session profile", err)
	}

	if err := s.rdb.Set(ctx, profileKey(userID), data, 0).Err(); err != nil {
		return apperrors.NewAppError(500, "Error saving session profile", err)
	}

	return nil
}

func (s *RedisStore) Invalidate(userID uint) error {
	if err := s.rdb.Del(ctx, profileKey(userID)).Err(); err != nil {
		return apperrors.NewAppError(500, "Error deleting session profile", err)
	}

	return nil
}

// UpdateWalletBalance mutates only the cached copy. Callers must have
// persisted newBalance already; a missing cache entry is not an error.
func (s *RedisStore) UpdateWalletBalance(userID uint, newBalance int) error {
	profile, err := s.Get(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}

	profile.WalletBalance = newBalance
	return s.Put(userID, profile)
}
