package ledger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"resty.dev/v3"
)

// SaleFacts are the sale fields mirrored onto the ledger. Price is the
// store-side decimal; the client converts it to minor units at the
// boundary.
type SaleFacts struct {
	SaleID      string
	ProductID   string
	ProductName string
	Qty         int
	Price       decimal.Decimal
}

// PriceToMinorUnits converts a decimal price to integer minor currency
// units (×100, e.g. rupees to paise).
func PriceToMinorUnits(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

type recordRequest struct {
	SaleID      string `json:"sale_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Qty         int    `json:"qty"`
	Price       int64  `json:"price"`
	Submitter   string `json:"submitter"`
}

type recordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Record `json:"data"`
}

// Client submits sale records to a ledger service over HTTP on behalf
// of a fixed submitter address.
type Client struct {
	http      *resty.Client
	submitter string
	logger    *zap.Logger
}

// NewClient creates a ledger client for the given base URL and
// submitter address.
func NewClient(baseURL, submitter string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:      resty.New().SetBaseURL(baseURL),
		submitter: submitter,
		logger:    logger,
	}
}

// RecordSale submits the sale facts and returns the ledger-assigned
// transaction reference. A duplicate sale ID surfaces as
// ErrAlreadyRecorded; anything else is a transport or server failure.
func (c *Client) RecordSale(ctx context.Context, facts SaleFacts) (string, error) {
	body := recordRequest{
		SaleID:      facts.SaleID,
		ProductID:   facts.ProductID,
		ProductName: facts.ProductName,
		Qty:         facts.Qty,
		Price:       PriceToMinorUnits(facts.Price),
		Submitter:   c.submitter,
	}

	var out recordResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post("/ledger/sales")
	if err != nil {
		return "", fmt.Errorf("ledger unreachable: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusCreated:
		return out.Data.Ref, nil
	case http.StatusConflict:
		return "", fmt.Errorf("%w: %s", ErrAlreadyRecorded, facts.SaleID)
	default:
		return "", fmt.Errorf("ledger rejected sale %s: status %d: %s", facts.SaleID, resp.StatusCode(), out.Message)
	}
}

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error {
	return c.http.Close()
}
