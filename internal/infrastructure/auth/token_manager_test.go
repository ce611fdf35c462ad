package auth

import (
	"errors"
	"testing"

	"carmasters/internal/domain/entities"
)

func TestTokenManager_SignAndParse(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Sign(entities.User{ID: 7, Username: "admin", Role: "admin"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "admin" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("expected issued/expiry timestamps")
	}
}

func TestTokenManager_Parse(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		m := NewTokenManager("test-secret")
		if _, err := m.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		signer := NewTokenManager("secret-a")
		verifier := NewTokenManager("secret-b")

		token, err := signer.Sign(entities.User{ID: 1, Username: "admin"})
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := verifier.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
