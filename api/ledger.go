package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evparts_admin/internal/ledger"
)

// ledgerHandler exposes the append-only ledger over HTTP. It stands in
// for the external ledger network and carries no bearer auth; callers
// identify themselves through the submitter address.
type ledgerHandler struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

func newLedgerHandler(l *ledger.Ledger, logger *zap.Logger) *ledgerHandler {
	return &ledgerHandler{ledger: l, logger: logger}
}

// RegisterLedgerRoutes mounts the ledger surface on the given engine.
func RegisterLedgerRoutes(e *gin.Engine, l *ledger.Ledger, logger *zap.Logger) {
	h := newLedgerHandler(l, logger)
	e.POST("/ledger/sales", h.handleRecord)
	e.GET("/ledger/sales", h.handleListIDs)
	e.GET("/ledger/sales/:id", h.handleGet)
}

// handleRecord handles POST /ledger/sales.
func (h *ledgerHandler) handleRecord(c *gin.Context) {
	var req struct {
		SaleID      string `json:"sale_id"`
		ProductID   string `json:"product_id"`
		ProductName string `json:"product_name"`
		Qty         int    `json:"qty"`
		Price       int64  `json:"price"`
		Submitter   string `json:"submitter"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	rec, err := h.ledger.Record(req.SaleID, req.ProductID, req.ProductName, req.Qty, req.Price, req.Submitter)
	if err != nil {
		if errors.Is(err, ledger.ErrAlreadyRecorded) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": rec})
}

// handleGet handles GET /ledger/sales/:id.
func (h *ledgerHandler) handleGet(c *gin.Context) {
	rec, err := h.ledger.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rec})
}

// handleListIDs handles GET /ledger/sales.
func (h *ledgerHandler) handleListIDs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"sale_ids": h.ledger.SaleIDs(),
			"count":    h.ledger.Count(),
		},
	})
}
