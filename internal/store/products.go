package store

import "evparts_admin/internal/products"

// ProductStore implements products.Storage on the shared Store.
type ProductStore struct {
	s *Store
}

func (ps *ProductStore) Insert(p *products.Product) error {
	if p.ID == "" {
		return products.ErrEmptyID
	}

	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	cp := *p
	ps.s.products[p.ID] = &cp
	return nil
}

func (ps *ProductStore) Read(id string) (*products.Product, error) {
	ps.s.mu.RLock()
	defer ps.s.mu.RUnlock()

	p, ok := ps.s.products[id]
	if !ok {
		return nil, products.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (ps *ProductStore) GetAll() ([]*products.Product, error) {
	ps.s.mu.RLock()
	defer ps.s.mu.RUnlock()

	all := make([]*products.Product, 0, len(ps.s.products))
	for _, p := range ps.s.products {
		cp := *p
		all = append(all, &cp)
	}
	return all, nil
}

// Update replaces a product document. The quantity written here is
// whatever the caller supplies; sale decrements never go through this
// path.
func (ps *ProductStore) Update(p *products.Product) error {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	if _, ok := ps.s.products[p.ID]; !ok {
		return products.ErrNotFound
	}
	cp := *p
	ps.s.products[p.ID] = &cp
	return nil
}

func (ps *ProductStore) Delete(id string) error {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	if _, ok := ps.s.products[id]; !ok {
		return products.ErrNotFound
	}
	delete(ps.s.products, id)
	return nil
}
