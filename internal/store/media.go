package store

import "evparts_admin/internal/media"

// MediaStore implements media.Storage on the shared Store.
type MediaStore struct {
	s *Store
}

func (ms *MediaStore) Insert(m *media.Media) error {
	if m.ID == "" {
		return media.ErrEmptyID
	}

	ms.s.mu.Lock()
	defer ms.s.mu.Unlock()

	cp := *m
	ms.s.media[m.ID] = &cp
	return nil
}

func (ms *MediaStore) Read(id string) (*media.Media, error) {
	ms.s.mu.RLock()
	defer ms.s.mu.RUnlock()

	m, ok := ms.s.media[id]
	if !ok {
		return nil, media.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (ms *MediaStore) GetAll() ([]*media.Media, error) {
	ms.s.mu.RLock()
	defer ms.s.mu.RUnlock()

	all := make([]*media.Media, 0, len(ms.s.media))
	for _, m := range ms.s.media {
		cp := *m
		all = append(all, &cp)
	}
	return all, nil
}

func (ms *MediaStore) Delete(id string) error {
	ms.s.mu.Lock()
	defer ms.s.mu.Unlock()

	if _, ok := ms.s.media[id]; !ok {
		return media.ErrNotFound
	}
	delete(ms.s.media, id)
	return nil
}
