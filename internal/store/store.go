// Package store is the embedded document store behind every entity
// Storage interface. All collections live under one RWMutex, which is
// also what gives the sale transaction its isolation: the stock check
// and the decrement run under the same write lock, so concurrent sales
// against one product serialize and can never jointly overdraw stock.
package store

import (
	"sync"

	"evparts_admin/internal/categories"
	"evparts_admin/internal/groups"
	"evparts_admin/internal/media"
	"evparts_admin/internal/products"
	"evparts_admin/internal/sales"
	"evparts_admin/internal/users"
)

// Store holds all document collections.
type Store struct {
	mu         sync.RWMutex
	users      map[string]*users.User
	groups     map[string]*groups.Group
	categories map[string]*categories.Category
	products   map[string]*products.Product
	sales      map[string]*sales.Sale
	media      map[string]*media.Media
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		users:      map[string]*users.User{},
		groups:     map[string]*groups.Group{},
		categories: map[string]*categories.Category{},
		products:   map[string]*products.Product{},
		sales:      map[string]*sales.Sale{},
		media:      map[string]*media.Media{},
	}
}

// Empty reports whether no documents have been stored yet.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users) == 0 && len(s.groups) == 0 && len(s.categories) == 0 &&
		len(s.products) == 0 && len(s.sales) == 0 && len(s.media) == 0
}

// Users returns the view implementing users.Storage.
func (s *Store) Users() *UserStore { return &UserStore{s} }

// Groups returns the view implementing groups.Storage.
func (s *Store) Groups() *GroupStore { return &GroupStore{s} }

// Categories returns the view implementing categories.Storage.
func (s *Store) Categories() *CategoryStore { return &CategoryStore{s} }

// Products returns the view implementing products.Storage.
func (s *Store) Products() *ProductStore { return &ProductStore{s} }

// Sales returns the view implementing sales.Storage.
func (s *Store) Sales() *SaleStore { return &SaleStore{s} }

// Media returns the view implementing media.Storage.
func (s *Store) Media() *MediaStore { return &MediaStore{s} }
