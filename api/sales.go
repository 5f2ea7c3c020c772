package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"evparts_admin/internal/products"
	"evparts_admin/internal/sales"
)

// salesHandler implements the sale endpoints, including the
// stock-decrementing sale transaction.
type salesHandler struct {
	sales  *sales.Service
	logger *zap.Logger
}

func newSalesHandler(saleService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{sales: saleService, logger: logger}
}

// handleList handles GET /api/sales.
func (h *salesHandler) handleList(c *gin.Context) {
	views, err := h.sales.List()
	if err != nil {
		h.logger.Error("failed to list sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": views})
}

// handleRecent handles GET /api/sales/recent.
func (h *salesHandler) handleRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	views, err := h.sales.Recent(limit)
	if err != nil {
		h.logger.Error("failed to list recent sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": views})
}

// handleCreate handles POST /api/sales. The sale record and the stock
// decrement commit together or not at all.
func (h *salesHandler) handleCreate(c *gin.Context) {
	var req struct {
		ProductID string          `json:"product_id"`
		Qty       int             `json:"qty"`
		Price     decimal.Decimal `json:"price"`
		Date      string          `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	sale, err := h.sales.CreateSale(req.ProductID, req.Qty, req.Price, date)
	if err != nil {
		switch {
		case errors.Is(err, products.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		case errors.Is(err, products.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Insufficient stock"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": sale.ID, "data": sale})
}

// handleAttachRef handles PUT /api/sales/:id. Attaching the ledger
// reference is the only update a sale accepts.
func (h *salesHandler) handleAttachRef(c *gin.Context) {
	var req struct {
		LedgerRef string `json:"tx_hash"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	sale, err := h.sales.AttachLedgerRef(c.Param("id"), req.LedgerRef)
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sale not found"})
		case errors.Is(err, sales.ErrRefAlreadyAttached):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Ledger reference already attached"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": sale})
}
