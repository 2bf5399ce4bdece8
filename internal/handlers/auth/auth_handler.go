// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"net/http"

	"farepass-service/internal/domain/auth"
	"farepass-service/internal/middleware"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/pkg/response"
	service "farepass-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates an admin and opens a session
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid login payload", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrUnauthorized):
			response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		case errors.Is(err, xerrors.ErrForbidden):
			response.Error(c, http.StatusForbidden, "account disabled", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "login failed", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "login successful", result)
}

// Logout revokes the current session
func (h *AuthHandler) Logout(c *gin.Context) {
	adminID := middleware.MustGetAdminID(c)
	jti := middleware.MustGetJTI(c)

	if err := h.authService.Logout(c.Request.Context(), adminID, jti); err != nil {
		response.Error(c, http.StatusInternalServerError, "logout failed", err)
		return
	}

	response.Success(c, http.StatusOK, "logged out", nil)
}

// ChangePassword rotates the admin's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	adminID := middleware.MustGetAdminID(c)

	var req auth.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), adminID, &req); err != nil {
		if errors.Is(err, xerrors.ErrUnauthorized) {
			response.Error(c, http.StatusUnauthorized, "current password is incorrect", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to change password", err)
		return
	}

	response.Success(c, http.StatusOK, "password changed", nil)
}

// Me returns the authenticated admin's record
func (h *AuthHandler) Me(c *gin.Context) {
	adminID := middleware.MustGetAdminID(c)

	admin, err := h.authService.GetAdmin(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load admin", err)
		return
	}

	response.Success(c, http.StatusOK, "admin retrieved", admin)
}
