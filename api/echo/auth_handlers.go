package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Neon18H/APP-WEB-FILPP/domain"
	"github.com/Neon18H/APP-WEB-FILPP/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler performs a password sign-in and installs the session cookie
// pair. A rejected credential is always the same fixed 401; the response
// never reveals which of email/password was wrong.
func (a *API) LoginHandler(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email y contraseña son obligatorios"})
	}

	session, user, err := a.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Error().Err(err).Msg("sign-in call failed")
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Credenciales inválidas"})
	}

	a.cookies.Write(c, session)

	return c.JSON(http.StatusOK, echo.Map{
		"user":               user,
		"session_expires_at": session.ExpiresAt,
	})
}

// LogoutHandler clears both session cookies. Idempotent: 204 whether or not
// a session existed.
func (a *API) LogoutHandler(c echo.Context) error {
	a.cookies.Clear(c)
	return c.NoContent(http.StatusNoContent)
}

// MeHandler returns the identity the gate resolved for this request.
func (a *API) MeHandler(c echo.Context) error {
	user, ok := domain.UserFromContext(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "No autorizado"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}
