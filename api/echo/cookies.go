package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Neon18H/APP-WEB-FILPP/domain"
)

// CookieManager owns the session cookie pair: http-only, SameSite=Lax,
// scoped to the whole path, Secure only in production-like mode.
type CookieManager struct {
	accessName  string
	refreshName string
	secure      bool
}

// NewCookieManager creates a CookieManager with the configured cookie names.
func NewCookieManager(accessName, refreshName string, secure bool) *CookieManager {
	return &CookieManager{
		accessName:  accessName,
		refreshName: refreshName,
		secure:      secure,
	}
}

func (m *CookieManager) baseCookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	}
}

// Write stores the session's token pair. The access cookie mirrors the
// session's reported lifetime, or becomes a session-lifetime cookie when the
// service reported none; the refresh cookie mirrors the reported refresh
// lifetime or defaults to ~30 days.
func (m *CookieManager) Write(c echo.Context, session *domain.Session) {
	if session == nil {
		return
	}

	if session.AccessToken != "" {
		cookie := m.baseCookie(m.accessName, session.AccessToken)
		if session.ExpiresIn > 0 {
			cookie.MaxAge = session.ExpiresIn
		}
		c.SetCookie(cookie)
	}

	if session.RefreshToken != "" {
		cookie := m.baseCookie(m.refreshName, session.RefreshToken)
		cookie.MaxAge = session.RefreshTokenExpiresIn
		if cookie.MaxAge <= 0 {
			cookie.MaxAge = domain.DefaultRefreshTokenLifetime
		}
		c.SetCookie(cookie)
	}
}

// Clear removes both cookies with matching attributes. Safe to call whether
// or not a session existed.
func (m *CookieManager) Clear(c echo.Context) {
	for _, name := range []string{m.accessName, m.refreshName} {
		cookie := m.baseCookie(name, "")
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

// AccessToken reads the access-token cookie, empty when absent.
func (m *CookieManager) AccessToken(c echo.Context) string {
	return readCookie(c, m.accessName)
}

// RefreshToken reads the refresh-token cookie, empty when absent.
func (m *CookieManager) RefreshToken(c echo.Context) string {
	return readCookie(c, m.refreshName)
}

func readCookie(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
