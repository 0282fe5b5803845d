package handlers

import (
	"errors"
	"net/http"

	"cabinkeep/services/auth"
	"cabinkeep/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the sign-in and token refresh endpoints.
type AuthHandler struct {
	Service auth.AuthService
}

// NewAuthHandler returns a handler bound to the given service.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// GoogleSignInHandler handles POST /auth/google. The body carries a Google ID
// token obtained by the client-side sign-in flow.
func (h *AuthHandler) GoogleSignInHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "ID token required")
		return
	}

	pair, err := h.Service.SignInWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthorizedEmail) {
			utils.JSONError(c, http.StatusForbidden, "Unauthorized")
			return
		}
		logger.Warn("Google sign-in rejected", zap.Error(err))
		utils.JSONError(c, http.StatusUnauthorized, "Invalid ID token")
		return
	}
	c.JSON(http.StatusOK, pair)
}

// RefreshHandler handles POST /refresh, exchanging a refresh token for a new
// access/refresh pair. The old refresh token is rotated out.
func (h *AuthHandler) RefreshHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Refresh token required")
		return
	}

	pair, err := h.Service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidRefreshToken) {
			utils.JSONError(c, http.StatusForbidden, "Invalid or expired refresh token")
			return
		}
		logger.Error("Failed to refresh tokens", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, pair)
}
