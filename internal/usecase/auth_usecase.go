package usecase

import (
	"context"
	"strings"

	"hospital-portal/config"
	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/cache"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/repository"
	"hospital-portal/pkg/apperror"
	"hospital-portal/pkg/jwt"
	"hospital-portal/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Logout revokes the access token and, when given, the refresh token.
	Logout(ctx context.Context, adminID uuid.UUID, accessTokenID, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*dto.AdminResponse, error)
	// SeedAdmin creates the configured admin account if it does not exist.
	SeedAdmin(ctx context.Context, cfg config.AdminConfig) error
}

type authUsecase struct {
	log        *logrus.Logger
	validator  *validator.CustomValidator
	adminRepo  repository.AdminRepository
	jwtService *jwt.JWTService
	tokens     cache.TokenStore
}

func NewAuthUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	adminRepo repository.AdminRepository,
	jwtService *jwt.JWTService,
	tokens cache.TokenStore,
) AuthUsecase {
	return &authUsecase{
		log:        log,
		validator:  validator,
		adminRepo:  adminRepo,
		jwtService: jwtService,
		tokens:     tokens,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := u.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	admin, err := u.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find admin by email: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, admin.ID, admin.Email)
}

func (u *authUsecase) Logout(ctx context.Context, adminID uuid.UUID, accessTokenID, refreshToken string) error {
	if err := u.tokens.Revoke(ctx, cache.AccessTokenKind, adminID, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if refreshToken == "" {
		return nil
	}

	// Only the caller's own refresh token can be revoked here.
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken || claims.AdminID != adminID {
		return nil
	}

	if err := u.tokens.Revoke(ctx, cache.RefreshTokenKind, adminID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to revoke refresh token: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	if err := u.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.tokens.Exists(ctx, cache.RefreshTokenKind, claims.AdminID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	// Refresh tokens are single use.
	if err := u.tokens.Revoke(ctx, cache.RefreshTokenKind, claims.AdminID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.AdminID, claims.Email)
}

func (u *authUsecase) GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*dto.AdminResponse, error) {
	admin, err := u.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		u.log.Warnf("Failed to find admin by ID: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	return converter.AdminToResponse(admin), nil
}

func (u *authUsecase) SeedAdmin(ctx context.Context, cfg config.AdminConfig) error {
	email := strings.TrimSpace(cfg.Email)
	if email == "" || cfg.Password == "" {
		u.log.Info("No admin account configured, skipping seed")
		return nil
	}

	existing, err := u.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find admin by email: %+v", err)
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "Administrator"
	}

	admin := &entity.Admin{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := u.adminRepo.Create(ctx, admin); err != nil {
		if isDuplicateKeyError(err, "email") {
			return apperror.NewConflictError("admin email already exists")
		}
		u.log.Warnf("Failed to create admin: %+v", err)
		return err
	}

	u.log.Infof("Seeded admin account %s", email)
	return nil
}

func (u *authUsecase) issueTokens(ctx context.Context, adminID uuid.UUID, email string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(adminID, email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(adminID, email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokens.Save(ctx, cache.AccessTokenKind, adminID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	if err := u.tokens.Save(ctx, cache.RefreshTokenKind, adminID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
