package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evparts_admin/internal/categories"
)

// categoriesHandler implements the category endpoints.
type categoriesHandler struct {
	categories *categories.Service
	logger     *zap.Logger
}

func newCategoriesHandler(categoryService *categories.Service, logger *zap.Logger) *categoriesHandler {
	return &categoriesHandler{categories: categoryService, logger: logger}
}

// handleList handles GET /api/categories.
func (h *categoriesHandler) handleList(c *gin.Context) {
	all, err := h.categories.List()
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": all})
}

// handleCreate handles POST /api/categories.
func (h *categoriesHandler) handleCreate(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	cat, err := h.categories.Create(req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": cat})
}

// handleUpdate handles PUT /api/categories/:id.
func (h *categoriesHandler) handleUpdate(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	cat, err := h.categories.Rename(c.Param("id"), req.Name)
	if err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": cat})
}

// handleDelete handles DELETE /api/categories/:id.
func (h *categoriesHandler) handleDelete(c *gin.Context) {
	if err := h.categories.Delete(c.Param("id")); err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
}
