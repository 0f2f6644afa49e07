package cache

import (
	"context"
	"fmt"
	"time"

	domainCache "hospital-portal/internal/domain/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisTokenStore keeps one key per issued token, e.g.
// "access_token:<admin id>:<token id>", expiring with the token.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) domainCache.TokenStore {
	return &RedisTokenStore{client: client}
}

func tokenKey(kind domainCache.TokenKind, adminID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", kind, adminID.String(), tokenID)
}

func (s *RedisTokenStore) Save(ctx context.Context, kind domainCache.TokenKind, adminID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(kind, adminID, tokenID), "valid", ttl).Err()
}

func (s *RedisTokenStore) Exists(ctx context.Context, kind domainCache.TokenKind, adminID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(kind, adminID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, kind domainCache.TokenKind, adminID uuid.UUID, tokenID string) error {
	if tokenID == "" {
		return nil
	}
	return s.client.Del(ctx, tokenKey(kind, adminID, tokenID)).Err()
}
