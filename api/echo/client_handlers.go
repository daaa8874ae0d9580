package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListClientsHandler returns every client record, newest first.
func (a *API) ListClientsHandler(c echo.Context) error {
	clients, err := a.clients.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error obteniendo clientes"})
	}
	return c.JSON(http.StatusOK, echo.Map{"clients": clients})
}
