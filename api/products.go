package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"evparts_admin/internal/products"
	"evparts_admin/internal/reports"
)

// productsHandler implements the product CRUD endpoints.
type productsHandler struct {
	products *products.Service
	reports  *reports.Service
	logger   *zap.Logger
}

func newProductsHandler(productService *products.Service, reportService *reports.Service, logger *zap.Logger) *productsHandler {
	return &productsHandler{products: productService, reports: reportService, logger: logger}
}

type productRequest struct {
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	BuyPrice   decimal.Decimal `json:"buy_price"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	CategoryID string          `json:"category_id"`
	ImageID    string          `json:"image_id"`
}

func (r productRequest) params() products.Params {
	return products.Params{
		Name:       r.Name,
		Quantity:   r.Quantity,
		BuyPrice:   r.BuyPrice,
		SalePrice:  r.SalePrice,
		CategoryID: r.CategoryID,
		ImageID:    r.ImageID,
	}
}

// handleList handles GET /api/products.
func (h *productsHandler) handleList(c *gin.Context) {
	views, err := h.products.List()
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": views})
}

// handleCreate handles POST /api/products.
func (h *productsHandler) handleCreate(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	product, err := h.products.Create(req.params())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
}

// handleUpdate handles PUT /api/products/:id.
func (h *productsHandler) handleUpdate(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	product, err := h.products.Update(c.Param("id"), req.params())
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// handleDelete handles DELETE /api/products/:id.
func (h *productsHandler) handleDelete(c *gin.Context) {
	if err := h.products.Delete(c.Param("id")); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}

// handleTop handles GET /api/products/top.
func (h *productsHandler) handleTop(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	top, err := h.reports.TopProducts(limit)
	if err != nil {
		h.logger.Error("failed to rank products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": top})
}
