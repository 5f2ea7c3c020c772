package groups

import (
	"time"

	"evparts_admin/internal/auth"
)

// Group names a permission level. Each level has at most one group.
type Group struct {
	ID        string     `json:"id"`
	Name      string     `json:"group_name"`
	Level     auth.Level `json:"group_level"`
	Status    int        `json:"group_status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
