package auth

// Level is an ordered permission tier attached to every authenticated
// caller. Lower values denote broader access: an admin is level 1, a
// regular staff account level 3.
type Level int

const (
	LevelAdmin   Level = 1
	LevelManager Level = 2
	LevelStaff   Level = 3
)

// Allows reports whether a caller holding l may use an endpoint that
// admits levels up to required. This is the single level comparison in
// the codebase; handlers must not compare levels directly.
func (l Level) Allows(required Level) bool {
	return l <= required
}

func (l Level) String() string {
	switch l {
	case LevelAdmin:
		return "admin"
	case LevelManager:
		return "manager"
	case LevelStaff:
		return "staff"
	default:
		return "unknown"
	}
}
