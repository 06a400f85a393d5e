package roster

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	feed *Feed
}

func NewHandler(feed *Feed) *Handler {
	return &Handler{feed: feed}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/roster/first", h.First)
	api.GET("/roster/:patient_id", h.GetPatient)
	api.POST("/roster/reload", h.Reload)
}

// First returns the first roster row; the issuing form uses it to prefill
// the patient ID field.
func (h *Handler) First(c echo.Context) error {
	entry, err := h.feed.First()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "roster is empty")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) GetPatient(c echo.Context) error {
	patientID, err := strconv.Atoi(c.Param("patient_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}

	entry, err := h.feed.Lookup(patientID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) Reload(c echo.Context) error {
	if err := h.feed.Reload(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"loaded": h.feed.Len()})
}
