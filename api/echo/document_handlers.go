package echo

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Neon18H/APP-WEB-FILPP/services"
)

// ListDocumentsHandler lists the documents stored for one client, each with
// a signed URL (nil when minting that one URL failed).
func (a *API) ListDocumentsHandler(c echo.Context) error {
	documents, err := a.documents.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error listando documentos"})
	}
	return c.JSON(http.StatusOK, echo.Map{"documents": documents})
}

// UploadDocumentHandler stores the multipart "file" field as a new document
// for the client and returns its synthesized name and signed URL. The size
// gate in front of this handler has already enforced the 15 MiB cap.
func (a *API) UploadDocumentHandler(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Archivo requerido"})
	}

	file, err := header.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("opening uploaded file failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error subiendo archivo"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("reading uploaded file failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error subiendo archivo"})
	}

	document, err := a.documents.Upload(
		c.Request().Context(),
		c.Param("id"),
		header.Filename,
		header.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		if errors.Is(err, services.ErrUploadedNoURL) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Documento subido sin URL firmada"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error subiendo archivo"})
	}

	return c.JSON(http.StatusCreated, document)
}
