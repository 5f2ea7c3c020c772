package store

import (
	"strings"

	"evparts_admin/internal/users"
)

// UserStore implements users.Storage on the shared Store.
type UserStore struct {
	s *Store
}

func (us *UserStore) Insert(u *users.User) error {
	if u.ID == "" {
		return users.ErrEmptyID
	}

	us.s.mu.Lock()
	defer us.s.mu.Unlock()

	if us.s.findByUsername(u.Username, u.ID) != nil {
		return users.ErrDuplicateUsername
	}
	cp := *u
	us.s.users[u.ID] = &cp
	return nil
}

func (us *UserStore) Read(id string) (*users.User, error) {
	us.s.mu.RLock()
	defer us.s.mu.RUnlock()

	u, ok := us.s.users[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// ReadByUsername matches the username case-insensitively.
func (us *UserStore) ReadByUsername(username string) (*users.User, error) {
	us.s.mu.RLock()
	defer us.s.mu.RUnlock()

	u := us.s.findByUsername(username, "")
	if u == nil {
		return nil, users.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (us *UserStore) GetAll() ([]*users.User, error) {
	us.s.mu.RLock()
	defer us.s.mu.RUnlock()

	all := make([]*users.User, 0, len(us.s.users))
	for _, u := range us.s.users {
		cp := *u
		all = append(all, &cp)
	}
	return all, nil
}

func (us *UserStore) Update(u *users.User) error {
	us.s.mu.Lock()
	defer us.s.mu.Unlock()

	if _, ok := us.s.users[u.ID]; !ok {
		return users.ErrNotFound
	}
	if other := us.s.findByUsername(u.Username, u.ID); other != nil {
		return users.ErrDuplicateUsername
	}
	cp := *u
	us.s.users[u.ID] = &cp
	return nil
}

func (us *UserStore) Delete(id string) error {
	us.s.mu.Lock()
	defer us.s.mu.Unlock()

	if _, ok := us.s.users[id]; !ok {
		return users.ErrNotFound
	}
	delete(us.s.users, id)
	return nil
}

// findByUsername returns the user holding username, ignoring the
// account with excludeID. Callers must hold the lock.
func (s *Store) findByUsername(username, excludeID string) *users.User {
	for _, u := range s.users {
		if u.ID != excludeID && strings.EqualFold(u.Username, username) {
			return u
		}
	}
	return nil
}
