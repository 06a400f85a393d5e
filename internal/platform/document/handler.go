package document

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-pdf/fpdf"
	"github.com/labstack/echo/v4"
)

// Handler serves rendered documents out of the temp store.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the download endpoints on the root group; the
// filenames in the URLs come from the render responses.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/download/:filename", h.Download)
	g.GET("/download_pdf", h.DownloadDemo)
}

// Download streams a previously rendered file.
func (h *Handler) Download(c echo.Context) error {
	filename := c.Param("filename")
	path, err := h.store.Open(filename)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidFilename):
			return echo.NewHTTPError(http.StatusBadRequest, "invalid filename")
		case errors.Is(err, ErrFileNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "file not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to open file")
		}
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.File(path)
}

// DownloadDemo returns a small generated PDF, useful for checking the
// download path end to end without issuing a plan.
func (h *Handler) DownloadDemo(c echo.Context) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 10, "Demo PDF", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate pdf")
	}
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
