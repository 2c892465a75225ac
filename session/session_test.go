package session

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSessionLifecycle(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	userID := uuid.New()

	s, err := m.Begin(userID, "admin@example.com")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if s.Token == "" {
		t.Fatal("session has no token")
	}
	if s.UserID != userID || s.Email != "admin@example.com" {
		t.Errorf("session = %+v", s)
	}

	got, err := m.Lookup(s.Token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != s {
		t.Error("lookup returned a different session")
	}

	// After logout the token is dead even though the JWT has not expired.
	m.End(s.Token)
	if _, err := m.Lookup(s.Token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("lookup after end: %v, want ErrInvalidToken", err)
	}
}

func TestLookupRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	if _, err := m.Lookup("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}

func TestLookupRejectsForeignSignature(t *testing.T) {
	other := NewManager("other-secret", time.Hour)
	s, err := other.Begin(uuid.New(), "admin@example.com")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	m := NewManager("test-secret", time.Hour)
	if _, err := m.Lookup(s.Token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}

func TestSessionEditorsPerEntity(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	s, err := m.Begin(uuid.New(), "admin@example.com")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	brands := s.Editor("brands")
	if brands == nil {
		t.Fatal("no editor returned")
	}
	if s.Editor("brands") != brands {
		t.Error("second lookup returned a different editor for the same kind")
	}
	if s.Editor("models") == brands {
		t.Error("different kinds share one editor")
	}

	// Edit state is private to the session.
	other, err := m.Begin(uuid.New(), "second@example.com")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if other.Editor("brands") == brands {
		t.Error("editors leak across sessions")
	}
}
