package store

import "evparts_admin/internal/categories"

// CategoryStore implements categories.Storage on the shared Store.
type CategoryStore struct {
	s *Store
}

func (cs *CategoryStore) Insert(c *categories.Category) error {
	if c.ID == "" {
		return categories.ErrEmptyID
	}

	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	cp := *c
	cs.s.categories[c.ID] = &cp
	return nil
}

func (cs *CategoryStore) Read(id string) (*categories.Category, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	c, ok := cs.s.categories[id]
	if !ok {
		return nil, categories.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (cs *CategoryStore) GetAll() ([]*categories.Category, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	all := make([]*categories.Category, 0, len(cs.s.categories))
	for _, c := range cs.s.categories {
		cp := *c
		all = append(all, &cp)
	}
	return all, nil
}

func (cs *CategoryStore) Update(c *categories.Category) error {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	if _, ok := cs.s.categories[c.ID]; !ok {
		return categories.ErrNotFound
	}
	cp := *c
	cs.s.categories[c.ID] = &cp
	return nil
}

func (cs *CategoryStore) Delete(id string) error {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	if _, ok := cs.s.categories[id]; !ok {
		return categories.ErrNotFound
	}
	delete(cs.s.categories, id)
	return nil
}
