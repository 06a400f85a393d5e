package plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ldtp/ldtp/pkg/pagination"
)

// DocumentRenderer turns an issued record into a downloadable file and
// reports the filename it wrote into the download area.
type DocumentRenderer interface {
	RenderPDF(rec *Record) (string, error)
	RenderWorkbook(rec *Record) (string, error)
}

type Handler struct {
	svc  *Service
	docs DocumentRenderer
}

func NewHandler(svc *Service, docs DocumentRenderer) *Handler {
	return &Handler{svc: svc, docs: docs}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/plans", h.Issue)
	api.POST("/plans/copy-forward", h.CopyForward)
	api.GET("/plans", h.History)
	api.GET("/plans/:id", h.Get)
	api.PUT("/plans/:id", h.Update)
	api.DELETE("/plans/latest", h.DeleteLatest)
	api.POST("/plans/:id/documents", h.CreateDocument)
}

func (h *Handler) Issue(c echo.Context) error {
	var in IssueInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.svc.Issue(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) CopyForward(c echo.Context) error {
	var body struct {
		PatientID int64 `json:"patient_id"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.PatientID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}

	rec, err := h.svc.CopyForward(c.Request().Context(), body.PatientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if rec == nil {
		// Nothing to copy from: the original treats this as a silent no-op.
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) History(c echo.Context) error {
	items, err := h.svc.History(c.Request().Context(), c.QueryParam("patient_id"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	p := pagination.FromContext(c)
	total := len(items)
	page := items
	if p.Offset < total {
		end := p.Offset + p.Limit
		if end > total {
			end = total
		}
		page = items[p.Offset:end]
	} else {
		page = []*Summary{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(page, total, p.Limit, p.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}
	rec, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "plan record not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}
	var rec Record
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec.ID = id

	if err := h.svc.Update(c.Request().Context(), &rec); err != nil {
		if errors.Is(err, ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "plan record not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) DeleteLatest(c echo.Context) error {
	id, err := h.svc.DeleteLatest(c.Request().Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "no plan records to delete")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int64{"deleted_id": id})
}

func (h *Handler) CreateDocument(c echo.Context) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}
	rec, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "plan record not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	format := c.QueryParam("format")
	if format == "" {
		format = "pdf"
	}

	var filename string
	switch format {
	case "pdf":
		filename, err = h.docs.RenderPDF(rec)
	case "xlsm":
		filename, err = h.docs.RenderWorkbook(rec)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "format must be pdf or xlsm")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"filename":     filename,
		"download_url": "/download/" + filename,
	})
}

func recordID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
