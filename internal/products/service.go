package products

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"evparts_admin/internal/categories"
	"evparts_admin/internal/media"
)

// View is a product joined with its category name and image file name
// for the admin tables.
type View struct {
	*Product
	CategoryName string `json:"category"`
	ImageFile    string `json:"image"`
}

// Params are the fields accepted when creating or updating a product.
type Params struct {
	Name       string
	Quantity   int
	BuyPrice   decimal.Decimal
	SalePrice  decimal.Decimal
	CategoryID string
	ImageID    string
}

// Service provides product management on a Storage backend.
type Service struct {
	storage    Storage
	categories categories.Storage
	media      media.Storage
	logger     *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, categoryStorage categories.Storage, mediaStorage media.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage:    storage,
		categories: categoryStorage,
		media:      mediaStorage,
		logger:     logger,
	}
}

// List returns all products, newest first, with category and image
// names resolved. Dangling references render as placeholders.
func (s *Service) List() ([]*View, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	views := make([]*View, 0, len(all))
	for _, p := range all {
		views = append(views, s.view(p))
	}
	return views, nil
}

// Get returns a single product with names resolved.
func (s *Service) Get(id string) (*View, error) {
	p, err := s.storage.Read(id)
	if err != nil {
		return nil, err
	}
	return s.view(p), nil
}

// Create registers a new product.
func (s *Service) Create(p Params) (*Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &Product{
		ID:         uuid.NewString(),
		Name:       p.Name,
		Quantity:   p.Quantity,
		BuyPrice:   p.BuyPrice,
		SalePrice:  p.SalePrice,
		CategoryID: p.CategoryID,
		ImageID:    p.ImageID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.storage.Insert(product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int("quantity", product.Quantity),
	)
	return product, nil
}

// Update replaces the editable fields of a product.
func (s *Service) Update(id string, p Params) (*Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	product, err := s.storage.Read(id)
	if err != nil {
		return nil, err
	}

	product.Name = p.Name
	product.Quantity = p.Quantity
	product.BuyPrice = p.BuyPrice
	product.SalePrice = p.SalePrice
	product.CategoryID = p.CategoryID
	product.ImageID = p.ImageID
	product.UpdatedAt = time.Now()

	if err := s.storage.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product. Past sales keep the dangling reference and
// list as "Deleted Product".
func (s *Service) Delete(id string) error {
	if err := s.storage.Delete(id); err != nil {
		return err
	}
	s.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}

func (s *Service) view(p *Product) *View {
	v := &View{Product: p, CategoryName: "N/A", ImageFile: "no_image.jpg"}
	if p.CategoryID != "" {
		if cat, err := s.categories.Read(p.CategoryID); err == nil {
			v.CategoryName = cat.Name
		}
	}
	if p.ImageID != "" {
		if m, err := s.media.Read(p.ImageID); err == nil {
			v.ImageFile = m.FileName
		}
	}
	return v
}

func validate(p Params) error {
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if p.Quantity < 0 {
		return fmt.Errorf("product quantity cannot be negative")
	}
	if p.BuyPrice.IsNegative() || p.SalePrice.IsNegative() {
		return fmt.Errorf("product prices cannot be negative")
	}
	if p.CategoryID == "" {
		return fmt.Errorf("product category is required")
	}
	return nil
}
