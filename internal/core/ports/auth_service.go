package ports

import (
	"context"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// AuthService implements registration and login. Both return a signed token
// alongside the account so clients can authenticate immediately.
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Me re-reads the account behind an authenticated identity.
	Me(ctx context.Context, identity domain.Identity) (*domain.User, error)
}
