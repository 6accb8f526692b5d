package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/service"
)

const testSecret = "secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, header string, hasHeader bool) (identity domain.Identity, called bool, err error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if hasHeader {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenService(testSecret))
	handler := mw(func(c echo.Context) error {
		called = true
		identity, _ = Identity(c)
		return c.NoContent(http.StatusOK)
	})
	err = handler(c)
	return identity, called, err
}

func TestAuth_ValidToken(t *testing.T) {
	signed := signToken(t, jwt.MapClaims{
		"sub":  "user-1",
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	identity, called, err := runAuth(t, "Bearer "+signed, true)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if identity.ID != "user-1" || identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuth_MissingCredential(t *testing.T) {
	cases := []struct {
		name      string
		header    string
		hasHeader bool
	}{
		{"no header", "", false},
		{"empty header", "", true},
		{"bearer with empty token", "Bearer ", true},
		{"bearer with whitespace token", "Bearer    ", true},
	}
	for _, tc := range cases {
		_, called, err := runAuth(t, tc.header, tc.hasHeader)
		if !errors.Is(err, domain.ErrAuthenticationRequired) {
			t.Fatalf("%s: expected ErrAuthenticationRequired, got %v", tc.name, err)
		}
		if called {
			t.Fatalf("%s: next called despite auth failure", tc.name)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	expired := signToken(t, jwt.MapClaims{
		"sub":  "user-1",
		"role": "USER",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})

	cases := []struct {
		name   string
		header string
	}{
		{"expired token", "Bearer " + expired},
		{"garbage token", "Bearer not-a-jwt"},
		{"lowercase scheme not stripped", "bearer " + expired},
	}
	for _, tc := range cases {
		_, called, err := runAuth(t, tc.header, true)
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", tc.name, err)
		}
		if called {
			t.Fatalf("%s: next called despite auth failure", tc.name)
		}
	}
}

func TestAuth_Idempotent(t *testing.T) {
	signed := signToken(t, jwt.MapClaims{
		"sub":  "user-1",
		"role": "USER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	first, _, err1 := runAuth(t, "Bearer "+signed, true)
	second, _, err2 := runAuth(t, "Bearer "+signed, true)
	if err1 != nil || err2 != nil {
		t.Fatalf("handler errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Fatalf("repeated authentication differs: %+v vs %+v", first, second)
	}
}
