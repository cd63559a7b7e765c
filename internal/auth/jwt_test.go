package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
)

func TestLogin_RoleSelection(t *testing.T) {
	i := NewIssuer("secret", time.Hour, "")

	token, s, err := i.Login(models.RoleDealer, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID != "u_dealer" || s.Name != "Dealer User" {
		t.Errorf("unexpected session %+v", s)
	}

	parsed, err := i.Parse("Bearer " + token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed != s {
		t.Errorf("expected %+v, got %+v", s, parsed)
	}
}

func TestLogin_InvalidRole(t *testing.T) {
	i := NewIssuer("secret", time.Hour, "")
	if _, _, err := i.Login("Superuser", ""); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestLogin_AdminPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatal(err)
	}
	i := NewIssuer("secret", time.Hour, hash)

	if _, _, err := i.Login(models.RoleAdmin, "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
	if _, _, err := i.Login(models.RoleAdmin, "s3cret!"); err != nil {
		t.Errorf("expected admin login to succeed, got %v", err)
	}
	if _, _, err := i.Login(models.RoleBuyer, ""); err != nil {
		t.Errorf("expected buyer login without password, got %v", err)
	}
}

func TestParse_Rejects(t *testing.T) {
	i := NewIssuer("secret", time.Hour, "")
	other := NewIssuer("other", time.Hour, "")
	foreign, _ := other.Sign(SessionFor(models.RoleBuyer))

	expired := NewIssuer("secret", time.Hour, "")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _ := expired.Sign(SessionFor(models.RoleBuyer))

	for name, tok := range map[string]string{
		"garbage": "not.a.token",
		"foreign": foreign,
		"expired": stale,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := i.Parse(tok); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
