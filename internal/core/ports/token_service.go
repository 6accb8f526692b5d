package ports

import "github.com/learnhub/course-catalog/internal/core/domain"

// TokenService issues and verifies signed, time-limited identity tokens.
// Validity is stateless: nothing is stored server-side, a token is good iff
// its signature checks out and it has not expired at verification time.
type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	// Verify returns domain.ErrAuthenticationRequired for an empty token and
	// domain.ErrInvalidToken for anything malformed, badly signed or expired.
	Verify(token string) (domain.Identity, error)
}
