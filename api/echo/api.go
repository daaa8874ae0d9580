// Package echo binds the BFF's REST surface to echo routes: login, logout,
// identity check, client listing, and per-client document listing/upload.
package echo

import (
	"github.com/labstack/echo/v4"

	"github.com/Neon18H/APP-WEB-FILPP/middleware"
	"github.com/Neon18H/APP-WEB-FILPP/services"
)

// API holds the handler dependencies.
type API struct {
	sessions  *services.SessionService
	clients   *services.ClientService
	documents *services.DocumentService
	cookies   *CookieManager
	gate      echo.MiddlewareFunc
}

// NewAPI wires the route handlers to their services and builds the auth gate
// shared by every protected route.
func NewAPI(
	sessions *services.SessionService,
	clients *services.ClientService,
	documents *services.DocumentService,
	cookies *CookieManager,
) *API {
	return &API{
		sessions:  sessions,
		clients:   clients,
		documents: documents,
		cookies:   cookies,
		gate:      middleware.SessionAuth(sessions, cookies),
	}
}

// RegisterRoutes registers the REST surface on e. The login and logout
// routes are public; everything else sits behind the session gate, and the
// upload route additionally behind the pre-handler file size gate.
func (a *API) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/api/auth")
	auth.POST("/login", a.LoginHandler)
	auth.POST("/logout", a.LogoutHandler)
	auth.GET("/me", a.MeHandler, a.gate)

	clients := e.Group("/api/clients", a.gate)
	clients.GET("", a.ListClientsHandler)
	clients.GET("/:id/docs", a.ListDocumentsHandler)
	clients.POST("/:id/docs", a.UploadDocumentHandler,
		middleware.LimitUploadSize(middleware.MaxUploadSize))
}
