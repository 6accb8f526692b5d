package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// tokenTTL is the fixed validity window of an issued token.
const tokenTTL = 2 * time.Hour

// TokenService issues and verifies HS256-signed identity tokens. The
// signing secret is injected at construction; tokens are never stored
// server-side.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: tokenTTL, now: time.Now}
}

// Issue signs a token carrying the identity id and role, expiring in 2h.
// It fails only when signing itself fails.
func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  identity.ID,
		"role": string(identity.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates a presented token and reconstructs the identity from its
// claims. The role claim is trusted as signed; it is not re-checked against
// storage. Expiry is exact: a token is valid iff now < exp, the boundary
// instant counts as expired.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	if token == "" {
		// A present-but-empty credential is treated like an absent one.
		return domain.Identity{}, domain.ErrAuthenticationRequired
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	id, _ := claims["sub"].(string)
	if id == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	roleClaim, _ := claims["role"].(string)
	role, ok := domain.ParseRole(roleClaim)
	if !ok {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{ID: id, Role: role}, nil
}
