// Package session replaces the original ambient auth state with explicit
// session objects: created at login, resolved per request, torn down at
// logout. Each session also owns the per-entity row editors, so edit
// state lives and dies with the admin who opened it.
package session

import (
	"errors"
	"sync"
	"time"

	"mobileshop-server/admin"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Session is one authenticated admin's working state.
type Session struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	CreatedAt time.Time

	mu      sync.Mutex
	editors map[string]*admin.Editor
}

// Editor returns the session's editor for one entity kind, creating it on
// first use. Each kind gets exactly one editor, so at most one row per
// list is ever in edit mode.
func (s *Session) Editor(kind string) *admin.Editor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editors == nil {
		s.editors = make(map[string]*admin.Editor)
	}
	e, ok := s.editors[kind]
	if !ok {
		e = admin.NewEditor()
		s.editors[kind] = e
	}
	return e
}

// Manager issues and resolves sessions. Tokens are JWTs; a token whose
// session was ended at logout no longer resolves even if the JWT itself
// has not expired.
type Manager struct {
	secret []byte
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Begin starts a session for an authenticated admin and returns it with
// its signed token.
func (m *Manager) Begin(userID uuid.UUID, email string) (*Session, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Token:     token,
		UserID:    userID,
		Email:     email,
		CreatedAt: now,
	}

	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()

	return s, nil
}

// Lookup resolves a bearer token to its live session.
func (m *Manager) Lookup(token string) (*Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	return s, nil
}

// End tears the session down. Subsequent lookups of the token fail.
func (m *Manager) End(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
