package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records one sales transaction. The product linkage is immutable;
// after creation the only legal mutation is attaching a ledger
// reference once the sale has been mirrored.
type Sale struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Date      time.Time       `json:"date"`
	LedgerRef string          `json:"tx_hash,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Mirrored reports whether the sale has a ledger reference attached.
func (s *Sale) Mirrored() bool {
	return s.LedgerRef != ""
}
