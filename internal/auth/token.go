package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a bearer token cannot be parsed,
// fails signature verification, or has expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the authenticated caller attached to each request after
// token verification. The permission level is trusted as embedded in
// the signed token and is not re-checked against the live user record.
type Identity struct {
	UserID   string
	Username string
	Level    Level
}

// Claims are the JWT claims carried by a login token.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Level    Level  `json:"user_level"`
}

// Manager issues and verifies login tokens signed with an HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token Manager with the given signing secret and
// token lifetime.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity.
func (m *Manager) Issue(ident Identity) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ident.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Username: ident.Username,
		Level:    ident.Level,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses a token string and returns the identity it carries.
func (m *Manager) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID:   claims.Subject,
		Username: claims.Username,
		Level:    claims.Level,
	}, nil
}
