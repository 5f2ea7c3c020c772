package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"evparts_admin/internal/auth"
	"evparts_admin/internal/categories"
	"evparts_admin/internal/groups"
	"evparts_admin/internal/products"
	"evparts_admin/internal/users"
)

// Seed fills an empty store with the default groups, accounts, and
// demo catalog.
func Seed(s *Store) error {
	now := time.Now()

	seedGroups := []struct {
		name  string
		level auth.Level
	}{
		{"Admin", auth.LevelAdmin},
		{"Manager", auth.LevelManager},
		{"Customer", auth.LevelStaff},
	}
	for _, g := range seedGroups {
		err := s.Groups().Insert(&groups.Group{
			ID:        uuid.NewString(),
			Name:      g.name,
			Level:     g.level,
			Status:    1,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("seeding group %s: %w", g.name, err)
		}
	}

	seedUsers := []struct {
		name     string
		username string
		password string
		level    auth.Level
	}{
		{"Default Admin", "Admin", "admin123", auth.LevelAdmin},
		{"Product Manager", "Manager", "manager123", auth.LevelManager},
		{"Regular Staff", "User", "user123", auth.LevelStaff},
	}
	for _, u := range seedUsers {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", u.username, err)
		}
		err = s.Users().Insert(&users.User{
			ID:           uuid.NewString(),
			Name:         u.name,
			Username:     u.username,
			PasswordHash: hash,
			Level:        u.level,
			Image:        "no_image.jpg",
			Status:       1,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", u.username, err)
		}
	}

	motors := &categories.Category{ID: uuid.NewString(), Name: "EV Motors", CreatedAt: now, UpdatedAt: now}
	batteries := &categories.Category{ID: uuid.NewString(), Name: "Batteries", CreatedAt: now, UpdatedAt: now}
	for _, c := range []*categories.Category{motors, batteries} {
		if err := s.Categories().Insert(c); err != nil {
			return fmt.Errorf("seeding category %s: %w", c.Name, err)
		}
	}

	err := s.Products().Insert(&products.Product{
		ID:         uuid.NewString(),
		Name:       "Hub Motor 900W",
		Quantity:   50,
		BuyPrice:   decimal.NewFromInt(8000),
		SalePrice:  decimal.NewFromInt(12500),
		CategoryID: motors.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return fmt.Errorf("seeding product: %w", err)
	}

	return nil
}
