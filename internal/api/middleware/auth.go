package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/course-catalog/internal/api/metrics"
	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

const identityKey = "identity"

// bearerPrefix is matched case-sensitively.
const bearerPrefix = "Bearer "

// Auth authenticates the request and injects the caller identity into the
// echo context. It never mutates the request; repeated calls with the same
// input yield the same result. A present-but-empty credential is rejected
// identically to an absent one.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_credential").Inc()
				return domain.ErrAuthenticationRequired
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
			if token == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_credential").Inc()
				return domain.ErrAuthenticationRequired
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, domain.ErrAuthenticationRequired) {
					reason = "missing_credential"
				}
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				return err
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// Identity extracts the identity stored by Auth. The second return value is
// false when the middleware did not run for this request.
func Identity(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}
