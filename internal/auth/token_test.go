package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evparts_admin/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	ident := auth.Identity{
		UserID:   "user-1",
		Username: "Admin",
		Level:    auth.LevelAdmin,
	}
	token, err := m.Issue(ident)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, ident, *got)
}

func TestVerify_ExpiredToken(t *testing.T) {
	m := auth.NewManager("test-secret", -time.Minute)

	token, err := m.Issue(auth.Identity{UserID: "user-1", Username: "Admin", Level: auth.LevelAdmin})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := auth.NewManager("one-secret", time.Hour)
	verifier := auth.NewManager("another-secret", time.Hour)

	token, err := issuer.Issue(auth.Identity{UserID: "user-1", Username: "Admin", Level: auth.LevelAdmin})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = m.Verify("")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, auth.CheckPassword(hash, "admin123"))
	assert.False(t, auth.CheckPassword(hash, "admin124"))
	assert.False(t, auth.CheckPassword("", "admin123"))
}
