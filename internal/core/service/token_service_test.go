package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

func fixedTokenService(secret string, at time.Time) *TokenService {
	svc := NewTokenService(secret)
	svc.now = func() time.Time { return at }
	return svc
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret")
	identity := domain.Identity{ID: "user-1", Role: domain.RoleAdmin}

	token, err := svc.Issue(identity)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != identity {
		t.Fatalf("identity mismatch: got %+v want %+v", got, identity)
	}
}

func TestTokenService_EmptyToken(t *testing.T) {
	svc := NewTokenService("secret")

	if _, err := svc.Verify(""); !errors.Is(err, domain.ErrAuthenticationRequired) {
		t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret")

	for _, token := range []string{"garbage", "a.b.c", "Bearer abc"} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a")
	verifier := NewTokenService("secret-b")

	token, err := issuer.Issue(domain.Identity{ID: "user-1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_ExpiryWindow(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := fixedTokenService("secret", base)

	token, err := issuer.Issue(domain.Identity{ID: "user-1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name  string
		at    time.Time
		valid bool
	}{
		{"just before expiry", base.Add(tokenTTL - time.Second), true},
		{"exact boundary", base.Add(tokenTTL), false},
		{"just after expiry", base.Add(tokenTTL + time.Second), false},
	}
	for _, tc := range cases {
		verifier := fixedTokenService("secret", tc.at)
		_, err := verifier.Verify(token)
		if tc.valid && err != nil {
			t.Fatalf("%s: expected valid, got %v", tc.name, err)
		}
		if !tc.valid && !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", tc.name, err)
		}
	}
}

func TestTokenService_MissingClaims(t *testing.T) {
	svc := NewTokenService("secret")

	// Signed with the right secret but no usable identity id.
	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "USER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := noSub.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing sub, got %v", err)
	}

	// A role outside the closed set is rejected as well.
	badRole := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-1",
		"role": "ROOT",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err = badRole.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for bad role, got %v", err)
	}
}
