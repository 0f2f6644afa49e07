package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-portal/config"
	"hospital-portal/internal/delivery/dto"
	domainCache "hospital-portal/internal/domain/cache"
	infraCache "hospital-portal/internal/infrastructure/cache"
	"hospital-portal/pkg/jwt"
	"hospital-portal/pkg/validator"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	usecase AuthUsecase
	admins  *fakeAdminRepo
	tokens  domainCache.TokenStore
	jwt     *jwt.JWTService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	admins := &fakeAdminRepo{}
	tokens := infraCache.NewRedisTokenStore(client)
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})

	return &authFixture{
		usecase: NewAuthUsecase(quietLogger(), validator.NewValidator(), admins, jwtService, tokens),
		admins:  admins,
		tokens:  tokens,
		jwt:     jwtService,
	}
}

var seedConfig = config.AdminConfig{Name: "Admin", Email: "admin@rs.test", Password: "rahasia123"}

func TestSeedAdmin_IsIdempotent(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.usecase.SeedAdmin(ctx, seedConfig))
	require.NoError(t, f.usecase.SeedAdmin(ctx, seedConfig))

	require.Len(t, f.admins.rows, 1)
	assert.NotEqual(t, seedConfig.Password, f.admins.rows[0].Password)
}

func TestSeedAdmin_SkipsWhenUnconfigured(t *testing.T) {
	f := newAuthFixture(t)

	require.NoError(t, f.usecase.SeedAdmin(context.Background(), config.AdminConfig{}))
	assert.Empty(t, f.admins.rows)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.usecase.SeedAdmin(ctx, seedConfig))

	_, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: seedConfig.Email, Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.usecase.Login(ctx, &dto.LoginRequest{Email: "nobody@rs.test", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	tokens, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: seedConfig.Email, Password: seedConfig.Password})
	require.NoError(t, err)
	assert.Equal(t, int64(900), tokens.ExpiresIn)

	claims, err := f.jwt.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	exists, err := f.tokens.Exists(ctx, domainCache.AccessTokenKind, claims.AdminID, claims.TokenID)
	require.NoError(t, err)
	assert.True(t, exists)

	me, err := f.usecase.GetCurrentAdmin(ctx, claims.AdminID)
	require.NoError(t, err)
	assert.Equal(t, seedConfig.Email, me.Email)
}

func TestRefreshToken_IsSingleUse(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.usecase.SeedAdmin(ctx, seedConfig))
	tokens, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: seedConfig.Email, Password: seedConfig.Password})
	require.NoError(t, err)

	refreshed, err := f.usecase.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = f.usecase.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = f.usecase.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: refreshed.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout_RevokesBothTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.usecase.SeedAdmin(ctx, seedConfig))
	tokens, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: seedConfig.Email, Password: seedConfig.Password})
	require.NoError(t, err)

	access, err := f.jwt.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	refresh, err := f.jwt.ValidateToken(tokens.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, f.usecase.Logout(ctx, access.AdminID, access.TokenID, tokens.RefreshToken))

	exists, err := f.tokens.Exists(ctx, domainCache.AccessTokenKind, access.AdminID, access.TokenID)
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = f.tokens.Exists(ctx, domainCache.RefreshTokenKind, refresh.AdminID, refresh.TokenID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetCurrentAdmin_Unknown(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.usecase.GetCurrentAdmin(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAdminNotFound)
}
