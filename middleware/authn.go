// Package middleware provides the request-processing steps that run before
// the route handlers: the cookie-session auth gate and the upload size gate.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Neon18H/APP-WEB-FILPP/domain"
	"github.com/Neon18H/APP-WEB-FILPP/services"
)

// SessionCookies writes and clears the session cookie pair. Implemented by
// the API's cookie manager; declared here so the gate does not depend on the
// handler package.
type SessionCookies interface {
	Write(c echo.Context, session *domain.Session)
	Clear(c echo.Context)
	AccessToken(c echo.Context) string
	RefreshToken(c echo.Context) string
}

// SessionAuth is the auth gate: it resolves the cookie token pair into an
// identity, refreshing the session at most once, before the handler runs.
// On success the identity lands in the request context; a refreshed session
// overwrites both cookies. On failure the handler is never invoked, both
// cookies are cleared and the response carries a fixed localized message.
func SessionAuth(sessions *services.SessionService, cookies SessionCookies) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			outcome, err := sessions.Resolve(
				c.Request().Context(),
				cookies.AccessToken(c),
				cookies.RefreshToken(c),
			)
			if err != nil {
				// Upstream unreachable or broken: nothing can be concluded
				// about the session, so keep the cookies and fail closed.
				log.Error().Err(err).Msg("session validation failed unexpectedly")
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error validando sesión"})
			}

			if outcome.State != services.StateValidAccess {
				cookies.Clear(c)
				message := "No autorizado"
				if outcome.RefreshFailed {
					message = "Sesión expirada"
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": message})
			}

			if outcome.Refreshed != nil {
				cookies.Write(c, outcome.Refreshed)
			}

			ctx := domain.ContextWithUser(c.Request().Context(), outcome.User)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
