package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evparts_admin/internal/auth"
	"evparts_admin/internal/users"
)

// authHandler implements the login endpoint.
type authHandler struct {
	users  *users.Service
	tokens *auth.Manager
	logger *zap.Logger
}

func newAuthHandler(userService *users.Service, tokens *auth.Manager, logger *zap.Logger) *authHandler {
	return &authHandler{users: userService, tokens: tokens, logger: logger}
}

// handleLogin handles POST /api/auth/login.
func (h *authHandler) handleLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	user, err := h.users.Authenticate(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrAccountDisabled):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Your account is disabled"})
		case errors.Is(err, users.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
		default:
			h.logger.Error("login failed", zap.String("username", req.Username), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
		}
		return
	}

	token, err := h.tokens.Issue(auth.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Level:    user.Level,
	})
	if err != nil {
		h.logger.Error("failed to issue token", zap.String("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"username":   user.Username,
			"user_level": user.Level,
			"image":      user.Image,
		},
	})
}
