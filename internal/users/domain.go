package users

import (
	"time"

	"evparts_admin/internal/auth"
)

// User is an admin panel account. The permission level decides which
// endpoints the account may call; see auth.Level.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Level        auth.Level `json:"user_level"`
	Image        string     `json:"image"`
	Status       int        `json:"status"` // 1=active, 0=disabled
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Active reports whether the account may log in.
func (u *User) Active() bool {
	return u.Status != 0
}
