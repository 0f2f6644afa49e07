package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Cache stores JSON encoded values by key.
type Cache interface {
	// GetJSON decodes the cached value into dest. It reports false on a miss.
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type TokenKind string

const (
	AccessTokenKind  TokenKind = "access_token"
	RefreshTokenKind TokenKind = "refresh_token"
)

// TokenStore tracks issued tokens so they can be revoked before expiry.
type TokenStore interface {
	Save(ctx context.Context, kind TokenKind, adminID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, kind TokenKind, adminID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, kind TokenKind, adminID uuid.UUID, tokenID string) error
}
