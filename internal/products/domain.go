package products

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an inventory item. Quantity is the live stock count and
// must never go below zero; only the sale transaction decrements it.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	BuyPrice   decimal.Decimal `json:"buy_price"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	CategoryID string          `json:"category_id"`
	ImageID    string          `json:"image_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
