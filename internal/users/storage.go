package users

import "errors"

// ErrNotFound is returned when a user with the given ID is not found.
var ErrNotFound = errors.New("user not found")

// ErrEmptyID is returned when trying to store a user with an empty ID.
var ErrEmptyID = errors.New("empty user ID")

// ErrDuplicateUsername is returned when the username is already taken
// by a different account.
var ErrDuplicateUsername = errors.New("username already exists")

// Storage is the persistence interface for user accounts. Username
// lookups are case-insensitive.
type Storage interface {
	Insert(u *User) error
	Read(id string) (*User, error)
	ReadByUsername(username string) (*User, error)
	GetAll() ([]*User, error)
	Update(u *User) error
	Delete(id string) error
}
