package categories

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service provides category management on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{storage: storage, logger: logger}
}

// List returns all categories sorted by name.
func (s *Service) List() ([]*Category, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

// Create registers a new category.
func (s *Service) Create(name string) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	now := time.Now()
	cat := &Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.Insert(cat); err != nil {
		return nil, err
	}

	s.logger.Info("category created", zap.String("category_id", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

// Rename changes the name of a category.
func (s *Service) Rename(id, name string) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	cat, err := s.storage.Read(id)
	if err != nil {
		return nil, err
	}

	cat.Name = name
	cat.UpdatedAt = time.Now()
	if err := s.storage.Update(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete removes a category. Products keep their dangling reference
// and render as uncategorized.
func (s *Service) Delete(id string) error {
	return s.storage.Delete(id)
}
