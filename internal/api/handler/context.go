package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/learnhub/course-catalog/internal/api/middleware"
	"github.com/learnhub/course-catalog/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// presence proves the middleware ran; a guarded route reached without it is
// a wiring bug and is rejected like a missing credential.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.Identity(c)
	if !ok || identity.ID == "" {
		return domain.Identity{}, domain.ErrAuthenticationRequired
	}
	return identity, nil
}
