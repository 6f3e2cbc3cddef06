package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret")

	issued, err := tokens.Issue(Identity{ID: 7, Username: "alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	identity, err := tokens.Verify(issued)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if identity.ID != 7 || identity.Username != "alice" {
		t.Errorf("got identity %+v, want {7 alice}", identity)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	issued, err := NewTokenService("one-secret").Issue(Identity{ID: 1, Username: "alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokenService("another-secret").Verify(issued); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	tokens := NewTokenService("test-secret")

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Verify(bad); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) = %v, want ErrInvalidToken", bad, err)
		}
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	claims := &tokenClaims{
		ID:       1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := NewTokenService(secret).Verify(expired); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}
