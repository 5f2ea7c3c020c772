package groups

import "errors"

// ErrNotFound is returned when a group with the given ID is not found.
var ErrNotFound = errors.New("group not found")

// ErrEmptyID is returned when trying to store a group with an empty ID.
var ErrEmptyID = errors.New("empty group ID")

// ErrDuplicateLevel is returned when another group already holds the
// requested level.
var ErrDuplicateLevel = errors.New("group level already in use")

// Storage is the persistence interface for groups.
type Storage interface {
	Insert(g *Group) error
	Read(id string) (*Group, error)
	GetAll() ([]*Group, error)
	Update(g *Group) error
}
