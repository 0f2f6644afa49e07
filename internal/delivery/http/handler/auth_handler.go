package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/delivery/http/middleware"
	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	log         *logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		log:         log,
	}
}

// Login handles admin login
// @Summary Login admin
// @Description Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		writeError(w, h.log, err, "Failed to login")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", tokens)
}

// Logout handles admin logout
// @Summary Logout admin
// @Description Logout and revoke tokens
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	// The refresh token is optional.
	var req dto.LogoutRequest
	json.NewDecoder(r.Body).Decode(&req)

	if err := h.authUsecase.Logout(r.Context(), adminID, tokenID, req.RefreshToken); err != nil {
		writeError(w, h.log, err, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Get new access token using refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken), errors.Is(err, usecase.ErrTokenRevoked):
			response.Error(w, http.StatusUnauthorized, err.Error(), nil)
		default:
			writeError(w, h.log, err, "Failed to refresh token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}

// GetCurrentAdmin handles getting the authenticated admin
// @Summary Get current admin
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentAdmin(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	admin, err := h.authUsecase.GetCurrentAdmin(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, usecase.ErrAdminNotFound) {
			response.NotFound(w, "Admin not found")
			return
		}
		writeError(w, h.log, err, "Failed to get admin info")
		return
	}

	response.Success(w, http.StatusOK, "Admin retrieved successfully", admin)
}
