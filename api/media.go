package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evparts_admin/internal/media"
)

// mediaHandler implements the media upload endpoints.
type mediaHandler struct {
	media  *media.Service
	logger *zap.Logger
}

func newMediaHandler(mediaService *media.Service, logger *zap.Logger) *mediaHandler {
	return &mediaHandler{media: mediaService, logger: logger}
}

// handleList handles GET /api/media.
func (h *mediaHandler) handleList(c *gin.Context) {
	all, err := h.media.List()
	if err != nil {
		h.logger.Error("failed to list media", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": all})
}

// handleUpload handles POST /api/media/upload.
func (h *mediaHandler) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
		return
	}

	if err := os.MkdirAll(h.media.Dir(), 0o755); err != nil {
		h.logger.Error("failed to create upload dir", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to store upload"})
		return
	}

	name := h.media.StoredName(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.media.Dir(), name)); err != nil {
		h.logger.Error("failed to save upload", zap.String("file", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to store upload"})
		return
	}

	m, err := h.media.Save(name, file.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": m})
}

// handleDelete handles DELETE /api/media/:id.
func (h *mediaHandler) handleDelete(c *gin.Context) {
	if err := h.media.Remove(c.Param("id")); err != nil {
		if errors.Is(err, media.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Media not found"})
			return
		}
		h.logger.Error("failed to delete media", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Media deleted"})
}
