package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mikens/recetas-api/internal/api/metrics"
	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

// Auth extracts the bearer token, verifies it, and injects the verified
// claims plus the derived role into the echo context. The role is recomputed
// here on every request; it is never read from client input.
func Auth(verifier ports.TokenVerifier, adminEmail string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("nombre", claims.Nombre)
			c.Set("role", string(domain.ResolveRole(claims.Email, adminEmail)))

			return next(c)
		}
	}
}
