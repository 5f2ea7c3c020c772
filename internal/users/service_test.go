package users_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"evparts_admin/internal/auth"
	"evparts_admin/internal/store"
	"evparts_admin/internal/users"
)

func newService(t *testing.T) (*users.Service, *store.Store) {
	t.Helper()
	st := store.New()
	require.NoError(t, store.Seed(st))
	return users.NewService(st.Users(), st.Groups(), zaptest.NewLogger(t)), st
}

func TestCreate(t *testing.T) {
	svc, _ := newService(t)

	user, err := svc.Create(users.CreateParams{
		Name:     "Counter Clerk",
		Username: "clerk",
		Password: "clerk123",
		Level:    auth.LevelStaff,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, 1, user.Status, "accounts default to active")
	assert.Equal(t, "no_image.jpg", user.Image)
	assert.NotEqual(t, "clerk123", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "clerk123"))
}

func TestCreate_DuplicateUsername(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(users.CreateParams{
		Name:     "Impostor",
		Username: "ADMIN",
		Password: "x",
		Level:    auth.LevelStaff,
	})
	assert.ErrorIs(t, err, users.ErrDuplicateUsername)
}

func TestCreate_MissingFields(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(users.CreateParams{Username: "x", Password: "x"})
	assert.Error(t, err)
	_, err = svc.Create(users.CreateParams{Name: "X", Password: "x"})
	assert.Error(t, err)
	_, err = svc.Create(users.CreateParams{Name: "X", Username: "x"})
	assert.Error(t, err)
}

func TestList_JoinsGroupNames(t *testing.T) {
	svc, _ := newService(t)

	views, err := svc.List()
	require.NoError(t, err)
	require.Len(t, views, 3)

	byUsername := map[string]string{}
	for _, v := range views {
		byUsername[v.Username] = v.GroupName
	}
	assert.Equal(t, "Admin", byUsername["Admin"])
	assert.Equal(t, "Manager", byUsername["Manager"])
	assert.Equal(t, "Customer", byUsername["User"])
}

func TestList_UnmatchedLevel(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(users.CreateParams{
		Name:     "Odd One",
		Username: "odd",
		Password: "x",
		Level:    auth.Level(9),
	})
	require.NoError(t, err)

	views, err := svc.List()
	require.NoError(t, err)
	for _, v := range views {
		if v.Username == "odd" {
			assert.Equal(t, "N/A", v.GroupName)
			return
		}
	}
	t.Fatal("created user missing from list")
}

func TestUpdate_PartialFields(t *testing.T) {
	svc, st := newService(t)

	admin, err := st.Users().ReadByUsername("admin")
	require.NoError(t, err)

	name := "Renamed Admin"
	updated, err := svc.Update(admin.ID, users.UpdateParams{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Admin", updated.Name)
	assert.Equal(t, admin.Username, updated.Username, "untouched fields keep their values")
	assert.Equal(t, admin.Level, updated.Level)

	password := "newpass"
	updated, err = svc.Update(admin.ID, users.UpdateParams{Password: &password})
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(updated.PasswordHash, "newpass"))
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newService(t)
	name := "X"
	_, err := svc.Update("missing", users.UpdateParams{Name: &name})
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, st := newService(t)

	staff, err := st.Users().ReadByUsername("user")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(staff.ID))
	_, err = st.Users().Read(staff.ID)
	assert.ErrorIs(t, err, users.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(staff.ID), users.ErrNotFound)
}

func TestAuthenticate(t *testing.T) {
	svc, st := newService(t)

	user, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Username)
	require.NotNil(t, user.LastLogin)

	_, err = svc.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)

	_, err = svc.Authenticate("ghost", "admin123")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)

	// Disabled accounts cannot log in even with the right password.
	staff, err := st.Users().ReadByUsername("user")
	require.NoError(t, err)
	status := 0
	_, err = svc.Update(staff.ID, users.UpdateParams{Status: &status})
	require.NoError(t, err)

	_, err = svc.Authenticate("user", "user123")
	assert.ErrorIs(t, err, users.ErrAccountDisabled)
}
