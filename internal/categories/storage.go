package categories

import "errors"

// ErrNotFound is returned when a category with the given ID is not found.
var ErrNotFound = errors.New("category not found")

// ErrEmptyID is returned when trying to store a category with an empty ID.
var ErrEmptyID = errors.New("empty category ID")

// Storage is the persistence interface for categories.
type Storage interface {
	Insert(c *Category) error
	Read(id string) (*Category, error)
	GetAll() ([]*Category, error)
	Update(c *Category) error
	Delete(id string) error
}
