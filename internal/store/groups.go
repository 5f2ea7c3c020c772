package store

import "evparts_admin/internal/groups"

// GroupStore implements groups.Storage on the shared Store.
type GroupStore struct {
	s *Store
}

func (gs *GroupStore) Insert(g *groups.Group) error {
	if g.ID == "" {
		return groups.ErrEmptyID
	}

	gs.s.mu.Lock()
	defer gs.s.mu.Unlock()

	for _, other := range gs.s.groups {
		if other.ID != g.ID && other.Level == g.Level {
			return groups.ErrDuplicateLevel
		}
	}
	cp := *g
	gs.s.groups[g.ID] = &cp
	return nil
}

func (gs *GroupStore) Read(id string) (*groups.Group, error) {
	gs.s.mu.RLock()
	defer gs.s.mu.RUnlock()

	g, ok := gs.s.groups[id]
	if !ok {
		return nil, groups.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (gs *GroupStore) GetAll() ([]*groups.Group, error) {
	gs.s.mu.RLock()
	defer gs.s.mu.RUnlock()

	all := make([]*groups.Group, 0, len(gs.s.groups))
	for _, g := range gs.s.groups {
		cp := *g
		all = append(all, &cp)
	}
	return all, nil
}

func (gs *GroupStore) Update(g *groups.Group) error {
	gs.s.mu.Lock()
	defer gs.s.mu.Unlock()

	if _, ok := gs.s.groups[g.ID]; !ok {
		return groups.ErrNotFound
	}
	for _, other := range gs.s.groups {
		if other.ID != g.ID && other.Level == g.Level {
			return groups.ErrDuplicateLevel
		}
	}
	cp := *g
	gs.s.groups[g.ID] = &cp
	return nil
}
