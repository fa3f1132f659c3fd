package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
)

// Middleware gates routes on the session registry. Every request looks the
// token up in the store, so revocation is immediate.
type Middleware struct {
	Auth *service.AuthService
}

func (m *Middleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionToken, err := BearerToken(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
		}

		user, err := m.Auth.Authenticate(c.Request().Context(), sessionToken)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
		}

		setUserContext(c, user)
		return next(c)
	}
}
