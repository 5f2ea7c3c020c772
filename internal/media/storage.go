package media

import "errors"

// ErrNotFound is returned when a media record with the given ID is not found.
var ErrNotFound = errors.New("media not found")

// ErrEmptyID is returned when trying to store a media record with an empty ID.
var ErrEmptyID = errors.New("empty media ID")

// Storage is the persistence interface for media records.
type Storage interface {
	Insert(m *Media) error
	Read(id string) (*Media, error)
	GetAll() ([]*Media, error)
	Delete(id string) error
}
