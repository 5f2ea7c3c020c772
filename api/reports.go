package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evparts_admin/internal/reports"
)

// reportsHandler implements the report endpoints.
type reportsHandler struct {
	reports *reports.Service
	logger  *zap.Logger
}

func newReportsHandler(reportService *reports.Service, logger *zap.Logger) *reportsHandler {
	return &reportsHandler{reports: reportService, logger: logger}
}

// handleDashboard handles GET /api/reports/dashboard.
func (h *reportsHandler) handleDashboard(c *gin.Context) {
	dash, err := h.reports.Dashboard()
	if err != nil {
		h.logger.Error("failed to build dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dash})
}

// handleDaily handles GET /api/reports/daily?year=&month=.
func (h *reportsHandler) handleDaily(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid month"})
		return
	}

	points, err := h.reports.Daily(year, month)
	if err != nil {
		h.logger.Error("failed to build daily report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": points})
}

// handleMonthly handles GET /api/reports/monthly?year=.
func (h *reportsHandler) handleMonthly(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid year"})
		return
	}

	points, err := h.reports.Monthly(year)
	if err != nil {
		h.logger.Error("failed to build monthly report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": points})
}

// handleRange handles GET /api/reports/range?start=&end=.
func (h *reportsHandler) handleRange(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid start date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid end date, expected YYYY-MM-DD"})
		return
	}
	// Make the end date inclusive of the whole day.
	end = end.Add(24*time.Hour - time.Nanosecond)

	rows, summary, err := h.reports.Range(start, end)
	if err != nil {
		h.logger.Error("failed to build range report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows, "summary": summary})
}
