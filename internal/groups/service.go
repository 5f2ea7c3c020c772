package groups

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evparts_admin/internal/auth"
)

// Service provides group management on a Storage backend.
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

// List returns all groups ordered by level, broadest access first.
func (s *Service) List() ([]*Group, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve groups: %w", err)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Level < all[j].Level })
	return all, nil
}

// Create registers a new group for an unused level.
func (s *Service) Create(name string, level auth.Level, status int) (*Group, error) {
	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}
	if level <= 0 {
		return nil, fmt.Errorf("group level must be a positive integer")
	}
	if status == 0 {
		status = 1
	}

	now := time.Now()
	group := &Group{
		ID:        uuid.NewString(),
		Name:      name,
		Level:     level,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.Insert(group); err != nil {
		return nil, err
	}

	s.logger.Info("group created", zap.String("group_id", group.ID), zap.Int("level", int(group.Level)))
	return group, nil
}

// Update changes the name, level, or status of a group.
func (s *Service) Update(id string, name *string, level *auth.Level, status *int) (*Group, error) {
	group, err := s.storage.Read(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		group.Name = *name
	}
	if level != nil {
		if *level <= 0 {
			return nil, fmt.Errorf("group level must be a positive integer")
		}
		group.Level = *level
	}
	if status != nil {
		group.Status = *status
	}
	group.UpdatedAt = time.Now()

	if err := s.storage.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}
