package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evparts_admin/internal/auth"
	"evparts_admin/internal/users"
)

// usersHandler implements the user CRUD endpoints.
type usersHandler struct {
	users  *users.Service
	logger *zap.Logger
}

func newUsersHandler(userService *users.Service, logger *zap.Logger) *usersHandler {
	return &usersHandler{users: userService, logger: logger}
}

// handleList handles GET /api/users.
func (h *usersHandler) handleList(c *gin.Context) {
	views, err := h.users.List()
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": views})
}

// handleCreate handles POST /api/users.
func (h *usersHandler) handleCreate(c *gin.Context) {
	var req struct {
		Name     string     `json:"name"`
		Username string     `json:"username"`
		Password string     `json:"password"`
		Level    auth.Level `json:"user_level"`
		Status   int        `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	user, err := h.users.Create(users.CreateParams{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Level:    req.Level,
		Status:   req.Status,
	})
	if err != nil {
		if errors.Is(err, users.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
}

// handleUpdate handles PUT /api/users/:id.
func (h *usersHandler) handleUpdate(c *gin.Context) {
	var req struct {
		Name     *string     `json:"name"`
		Username *string     `json:"username"`
		Password *string     `json:"password"`
		Level    *auth.Level `json:"user_level"`
		Status   *int        `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	user, err := h.users.Update(c.Param("id"), users.UpdateParams{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Level:    req.Level,
		Status:   req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		case errors.Is(err, users.ErrDuplicateUsername):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// handleDelete handles DELETE /api/users/:id.
func (h *usersHandler) handleDelete(c *gin.Context) {
	if err := h.users.Delete(c.Param("id")); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}
