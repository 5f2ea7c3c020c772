package store

import (
	"fmt"
	"time"

	"evparts_admin/internal/products"
	"evparts_admin/internal/sales"
)

// SaleStore implements sales.Storage on the shared Store.
type SaleStore struct {
	s *Store
}

// Record runs the sale transaction: stock check, sale insert, and
// stock decrement under one write lock. Both precondition failures
// happen before any mutation, so a rejected sale leaves the store
// exactly as it was. Holding the lock across the whole sequence is
// what serializes concurrent sales against the same product.
func (ss *SaleStore) Record(sale *sales.Sale) (*products.Product, error) {
	if sale.ID == "" {
		return nil, sales.ErrEmptyID
	}

	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	product, ok := ss.s.products[sale.ProductID]
	if !ok {
		return nil, products.ErrNotFound
	}
	if product.Quantity < sale.Qty {
		return nil, fmt.Errorf("%w: have %d, requested %d", products.ErrInsufficientStock, product.Quantity, sale.Qty)
	}
	if _, exists := ss.s.sales[sale.ID]; exists {
		return nil, fmt.Errorf("sale %s already recorded", sale.ID)
	}

	cp := *sale
	ss.s.sales[sale.ID] = &cp
	product.Quantity -= sale.Qty
	product.UpdatedAt = time.Now()

	out := *product
	return &out, nil
}

func (ss *SaleStore) Read(id string) (*sales.Sale, error) {
	ss.s.mu.RLock()
	defer ss.s.mu.RUnlock()

	sale, ok := ss.s.sales[id]
	if !ok {
		return nil, sales.ErrNotFound
	}
	cp := *sale
	return &cp, nil
}

func (ss *SaleStore) GetAll() ([]*sales.Sale, error) {
	ss.s.mu.RLock()
	defer ss.s.mu.RUnlock()

	all := make([]*sales.Sale, 0, len(ss.s.sales))
	for _, sale := range ss.s.sales {
		cp := *sale
		all = append(all, &cp)
	}
	return all, nil
}

// AttachLedgerRef sets the ledger reference on a sale. The reference
// attaches once: a different reference on an already-mirrored sale is
// rejected.
func (ss *SaleStore) AttachLedgerRef(id, ref string) (*sales.Sale, error) {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	sale, ok := ss.s.sales[id]
	if !ok {
		return nil, sales.ErrNotFound
	}
	if sale.LedgerRef != "" && sale.LedgerRef != ref {
		return nil, sales.ErrRefAlreadyAttached
	}
	sale.LedgerRef = ref
	sale.UpdatedAt = time.Now()

	cp := *sale
	return &cp, nil
}

// Product reads the referenced product, for joining product names onto
// sale listings.
func (ss *SaleStore) Product(id string) (*products.Product, error) {
	ss.s.mu.RLock()
	defer ss.s.mu.RUnlock()

	p, ok := ss.s.products[id]
	if !ok {
		return nil, products.ErrNotFound
	}
	cp := *p
	return &cp, nil
}
