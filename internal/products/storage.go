package products

import "errors"

// ErrNotFound is returned when a product with the given ID is not found.
var ErrNotFound = errors.New("product not found")

// ErrEmptyID is returned when trying to store a product with an empty ID.
var ErrEmptyID = errors.New("empty product ID")

// ErrInsufficientStock is returned when a sale asks for more units than
// the product has in stock. The check and the decrement happen inside
// one store transaction, so callers never observe a partial state.
var ErrInsufficientStock = errors.New("insufficient stock")

// Storage is the persistence interface for products. Stock decrements
// are not exposed here: they only happen through the sale transaction.
type Storage interface {
	Insert(p *Product) error
	Read(id string) (*Product, error)
	GetAll() ([]*Product, error)
	Update(p *Product) error
	Delete(id string) error
}
