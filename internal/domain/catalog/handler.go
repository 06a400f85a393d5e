package catalog

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/main-diseases", h.ListMainDiseases)
	api.GET("/sheet-names", h.ListSheetNames)
}

func (h *Handler) ListMainDiseases(c echo.Context) error {
	items, err := h.svc.ListMainDiseases(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*MainDisease{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListSheetNames(c echo.Context) error {
	mainDiseaseID := 0
	if raw := c.QueryParam("main_disease_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid main_disease_id")
		}
		mainDiseaseID = id
	}

	items, err := h.svc.ListSheetNames(c.Request().Context(), mainDiseaseID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*SheetName{}
	}
	return c.JSON(http.StatusOK, items)
}
