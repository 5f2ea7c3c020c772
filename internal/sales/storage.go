package sales

import (
	"errors"

	"evparts_admin/internal/products"
)

// ErrNotFound is returned when a sale with the given ID is not found.
var ErrNotFound = errors.New("sale not found")

// ErrEmptyID is returned when trying to store a sale with an empty ID.
var ErrEmptyID = errors.New("empty sale ID")

// ErrRefAlreadyAttached is returned when a sale already carries a
// different ledger reference. References attach once and never change.
var ErrRefAlreadyAttached = errors.New("ledger reference already attached")

// Storage is the persistence interface for sales.
//
// Record is the sale transaction: it checks stock, inserts the sale,
// and decrements the product quantity as one atomic unit. Either all
// of it happens or none of it does, and concurrent calls against the
// same product serialize their check-then-decrement sequence. It
// returns the product as it stands after the decrement. Failures are
// products.ErrNotFound and products.ErrInsufficientStock, both raised
// before any mutation.
type Storage interface {
	Record(sale *Sale) (*products.Product, error)
	Read(id string) (*Sale, error)
	GetAll() ([]*Sale, error)
	AttachLedgerRef(id, ref string) (*Sale, error)
	Product(id string) (*products.Product, error)
}
