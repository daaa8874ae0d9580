package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MaxUploadSize is the per-file upload cap: 15 MiB.
const MaxUploadSize = 15 << 20

// multipartMemoryLimit is how much of the form is held in memory before
// spilling to disk while parsing.
const multipartMemoryLimit = 32 << 20

// LimitUploadSize rejects multipart uploads whose "file" part exceeds limit
// bytes, before the handler runs. The parsed form stays attached to the
// request, so the handler's FormFile call does not re-read the body.
// Requests without a parseable multipart body pass through; the handler is
// responsible for the missing-file 400.
func LimitUploadSize(limit int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if err := req.ParseMultipartForm(multipartMemoryLimit); err != nil {
				return next(c)
			}
			for _, headers := range req.MultipartForm.File {
				for _, header := range headers {
					if header.Size > limit {
						return c.JSON(http.StatusRequestEntityTooLarge,
							echo.Map{"error": "Archivo demasiado grande"})
					}
				}
			}
			return next(c)
		}
	}
}
