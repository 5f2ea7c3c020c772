package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evparts_admin/internal/auth"
	"evparts_admin/internal/groups"
)

// groupsHandler implements the group endpoints.
type groupsHandler struct {
	groups *groups.Service
	logger *zap.Logger
}

func newGroupsHandler(groupService *groups.Service, logger *zap.Logger) *groupsHandler {
	return &groupsHandler{groups: groupService, logger: logger}
}

// handleList handles GET /api/groups.
func (h *groupsHandler) handleList(c *gin.Context) {
	all, err := h.groups.List()
	if err != nil {
		h.logger.Error("failed to list groups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": all})
}

// handleCreate handles POST /api/groups.
func (h *groupsHandler) handleCreate(c *gin.Context) {
	var req struct {
		Name   string     `json:"group_name"`
		Level  auth.Level `json:"group_level"`
		Status int        `json:"group_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	group, err := h.groups.Create(req.Name, req.Level, req.Status)
	if err != nil {
		if errors.Is(err, groups.ErrDuplicateLevel) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Group level already in use"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": group})
}

// handleUpdate handles PUT /api/groups/:id.
func (h *groupsHandler) handleUpdate(c *gin.Context) {
	var req struct {
		Name   *string     `json:"group_name"`
		Level  *auth.Level `json:"group_level"`
		Status *int        `json:"group_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	group, err := h.groups.Update(c.Param("id"), req.Name, req.Level, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, groups.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Group not found"})
		case errors.Is(err, groups.ErrDuplicateLevel):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Group level already in use"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": group})
}
