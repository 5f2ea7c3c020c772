package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"evparts_admin/internal/ledger"
)

const mirrorTimeout = 10 * time.Second

// Mirror pushes sale facts to the append-only ledger and returns the
// ledger-assigned transaction reference.
type Mirror interface {
	RecordSale(ctx context.Context, facts ledger.SaleFacts) (string, error)
}

// View is a sale joined with the product name for the admin tables.
// The date is rendered as YYYY-MM-DD.
type View struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Qty         int             `json:"qty"`
	Price       decimal.Decimal `json:"price"`
	Date        string          `json:"date"`
	LedgerRef   string          `json:"tx_hash,omitempty"`
}

// Service provides sale recording and listing on a Storage backend.
// When a Mirror is configured, each recorded sale is pushed to the
// ledger in the background; mirroring is best-effort and never fails
// the already-committed sale.
type Service struct {
	storage Storage
	mirror  Mirror
	logger  *zap.Logger
}

// NewService creates a new Service. mirror may be nil to disable
// ledger mirroring.
func NewService(storage Storage, mirror Mirror, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		mirror:  mirror,
		logger:  logger,
	}
}

// CreateSale records a sale and decrements the product stock in one
// transaction. The date defaults to the current time.
func (s *Service) CreateSale(productID string, qty int, price decimal.Decimal, date time.Time) (*Sale, error) {
	if productID == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	if qty <= 0 {
		return nil, fmt.Errorf("quantity must be greater than zero")
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("price must be greater than zero")
	}
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now()
	sale := &Sale{
		ID:        uuid.NewString(),
		ProductID: productID,
		Qty:       qty,
		Price:     price,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	product, err := s.storage.Record(sale)
	if err != nil {
		return nil, err
	}

	s.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID),
		zap.String("product_id", productID),
		zap.Int("qty", qty),
		zap.Int("stock_left", product.Quantity),
	)

	if s.mirror != nil {
		go s.mirrorSale(sale, product.Name)
	}

	return sale, nil
}

// mirrorSale pushes an already-committed sale to the ledger. Failures
// are logged and leave the sale unmirrored; nothing is rolled back.
func (s *Service) mirrorSale(sale *Sale, productName string) {
	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()

	ref, err := s.mirror.RecordSale(ctx, ledger.SaleFacts{
		SaleID:      sale.ID,
		ProductID:   sale.ProductID,
		ProductName: productName,
		Qty:         sale.Qty,
		Price:       sale.Price,
	})
	if err != nil {
		s.logger.Warn("ledger mirror failed, sale left unmirrored",
			zap.String("sale_id", sale.ID),
			zap.Error(err),
		)
		return
	}

	if _, err := s.storage.AttachLedgerRef(sale.ID, ref); err != nil {
		s.logger.Warn("failed to attach ledger reference",
			zap.String("sale_id", sale.ID),
			zap.String("ref", ref),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("sale mirrored to ledger", zap.String("sale_id", sale.ID), zap.String("ref", ref))
}

// AttachLedgerRef attaches a ledger reference to a sale. This is the
// only field a sale update may touch.
func (s *Service) AttachLedgerRef(saleID, ref string) (*Sale, error) {
	if ref == "" {
		return nil, fmt.Errorf("ledger reference is required")
	}
	return s.storage.AttachLedgerRef(saleID, ref)
}

// Get returns a single sale.
func (s *Service) Get(id string) (*Sale, error) {
	return s.storage.Read(id)
}

// List returns all sales, newest first, with product names resolved.
func (s *Service) List() ([]*View, error) {
	return s.list(0)
}

// Recent returns the most recent sales, capped at limit.
func (s *Service) Recent(limit int) ([]*View, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.list(limit)
}

func (s *Service) list(limit int) ([]*View, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sales: %w", err)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	views := make([]*View, 0, len(all))
	for _, sale := range all {
		name := "Deleted Product"
		if p, err := s.storage.Product(sale.ProductID); err == nil {
			name = p.Name
		}
		views = append(views, &View{
			ID:          sale.ID,
			ProductID:   sale.ProductID,
			ProductName: name,
			Qty:         sale.Qty,
			Price:       sale.Price,
			Date:        sale.Date.Format("2006-01-02"),
			LedgerRef:   sale.LedgerRef,
		})
	}
	return views, nil
}
