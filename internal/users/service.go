package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evparts_admin/internal/auth"
	"evparts_admin/internal/groups"
)

// ErrInvalidCredentials is returned when the username or password does
// not match an account.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrAccountDisabled is returned when a disabled account tries to log in.
var ErrAccountDisabled = errors.New("account is disabled")

// View is a user joined with the name of the group matching its level.
type View struct {
	*User
	GroupName string `json:"group_name"`
}

// CreateParams are the fields accepted when creating an account.
type CreateParams struct {
	Name     string
	Username string
	Password string
	Level    auth.Level
	Status   int
}

// UpdateParams are the optional fields of a partial account update.
// Nil fields are left untouched.
type UpdateParams struct {
	Name     *string
	Username *string
	Password *string
	Level    *auth.Level
	Status   *int
}

// Service provides account management on a Storage backend.
type Service struct {
	storage Storage
	groups  groups.Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, groupStorage groups.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		groups:  groupStorage,
		logger:  logger,
	}
}

// List returns all accounts with the matching group name attached.
func (s *Service) List() ([]*View, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}

	byLevel := map[auth.Level]string{}
	if gs, err := s.groups.GetAll(); err == nil {
		for _, g := range gs {
			byLevel[g.Level] = g.Name
		}
	}

	views := make([]*View, 0, len(all))
	for _, u := range all {
		name, ok := byLevel[u.Level]
		if !ok {
			name = "N/A"
		}
		views = append(views, &View{User: u, GroupName: name})
	}
	return views, nil
}

// Create registers a new account with a hashed password.
func (s *Service) Create(p CreateParams) (*User, error) {
	if p.Name == "" || p.Username == "" || p.Password == "" {
		return nil, fmt.Errorf("name, username and password are required")
	}
	if p.Status == 0 {
		p.Status = 1
	}

	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &User{
		ID:           uuid.NewString(),
		Name:         p.Name,
		Username:     p.Username,
		PasswordHash: hash,
		Level:        p.Level,
		Image:        "no_image.jpg",
		Status:       p.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.Insert(user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Stringer("level", user.Level),
	)
	return user, nil
}

// Update applies a partial update to an account.
func (s *Service) Update(id string, p UpdateParams) (*User, error) {
	user, err := s.storage.Read(id)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Username != nil {
		user.Username = *p.Username
	}
	if p.Password != nil {
		hash, err := auth.HashPassword(*p.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if p.Level != nil {
		user.Level = *p.Level
	}
	if p.Status != nil {
		user.Status = *p.Status
	}
	user.UpdatedAt = time.Now()

	if err := s.storage.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account.
func (s *Service) Delete(id string) error {
	if err := s.storage.Delete(id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", id))
	return nil
}

// Authenticate checks the credentials and records the login time.
func (s *Service) Authenticate(username, password string) (*User, error) {
	user, err := s.storage.ReadByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active() {
		return nil, ErrAccountDisabled
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	user.UpdatedAt = now
	if err := s.storage.Update(user); err != nil {
		s.logger.Warn("failed to record last login", zap.String("user_id", user.ID), zap.Error(err))
	}

	return user, nil
}
