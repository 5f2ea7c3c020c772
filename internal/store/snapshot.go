package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"evparts_admin/internal/categories"
	"evparts_admin/internal/groups"
	"evparts_admin/internal/media"
	"evparts_admin/internal/products"
	"evparts_admin/internal/sales"
	"evparts_admin/internal/users"
)

// userRecord carries the password hash, which the API representation
// of a user deliberately omits.
type userRecord struct {
	users.User
	PasswordHash string `json:"password_hash"`
}

type snapshot struct {
	Users      []userRecord           `json:"users"`
	Groups     []*groups.Group        `json:"groups"`
	Categories []*categories.Category `json:"categories"`
	Products   []*products.Product    `json:"products"`
	Sales      []*sales.Sale          `json:"sales"`
	Media      []*media.Media         `json:"media"`
}

// Snapshot writes the whole store to a JSON file.
func (s *Store) Snapshot(path string) error {
	s.mu.RLock()
	snap := snapshot{
		Users:      make([]userRecord, 0, len(s.users)),
		Groups:     make([]*groups.Group, 0, len(s.groups)),
		Categories: make([]*categories.Category, 0, len(s.categories)),
		Products:   make([]*products.Product, 0, len(s.products)),
		Sales:      make([]*sales.Sale, 0, len(s.sales)),
		Media:      make([]*media.Media, 0, len(s.media)),
	}
	for _, u := range s.users {
		snap.Users = append(snap.Users, userRecord{User: *u, PasswordHash: u.PasswordHash})
	}
	for _, g := range s.groups {
		snap.Groups = append(snap.Groups, g)
	}
	for _, c := range s.categories {
		snap.Categories = append(snap.Categories, c)
	}
	for _, p := range s.products {
		snap.Products = append(snap.Products, p)
	}
	for _, sale := range s.sales {
		snap.Sales = append(snap.Sales, sale)
	}
	for _, m := range s.media {
		snap.Media = append(snap.Media, m)
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Restore loads a snapshot file, replacing the store contents.
func (s *Store) Restore(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = map[string]*users.User{}
	for _, rec := range snap.Users {
		u := rec.User
		u.PasswordHash = rec.PasswordHash
		s.users[u.ID] = &u
	}
	s.groups = map[string]*groups.Group{}
	for _, g := range snap.Groups {
		s.groups[g.ID] = g
	}
	s.categories = map[string]*categories.Category{}
	for _, c := range snap.Categories {
		s.categories[c.ID] = c
	}
	s.products = map[string]*products.Product{}
	for _, p := range snap.Products {
		s.products[p.ID] = p
	}
	s.sales = map[string]*sales.Sale{}
	for _, sale := range snap.Sales {
		s.sales[sale.ID] = sale
	}
	s.media = map[string]*media.Media{}
	for _, m := range snap.Media {
		s.media[m.ID] = m
	}
	return nil
}
