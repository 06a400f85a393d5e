package template

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func seededHandler(t *testing.T) *Handler {
	t.Helper()
	svc := NewService(newMockRepo())
	if err := svc.SeedDefaults(context.Background()); err != nil { t.Fatalf("seed: %v", err) }
	return NewHandler(svc)
}

func TestResolve_Handler(t *testing.T) {
	h := seededHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/templates/resolve?main_disease=糖尿病&sheet_name=HbAc７％", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Resolve(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusOK { t.Fatalf("expected 200, got %d", rec.Code) }

	var tpl Template
	if err := json.Unmarshal(rec.Body.Bytes(), &tpl); err != nil { t.Fatalf("unmarshal: %v", err) }
	if tpl.ExerciseFrequency != "ほぼ毎日" { t.Errorf("unexpected exercise frequency %q", tpl.ExerciseFrequency) }
}

func TestResolve_Handler_NotFound(t *testing.T) {
	h := seededHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/templates/resolve?main_disease=糖尿病&sheet_name=nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Resolve(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok { t.Fatalf("expected echo.HTTPError, got %T", err) }
	if httpErr.Code != http.StatusNotFound { t.Errorf("expected 404, got %d", httpErr.Code) }
}

func TestResolve_Handler_MissingParams(t *testing.T) {
	h := seededHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/templates/resolve", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Resolve(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok { t.Fatalf("expected echo.HTTPError, got %T", err) }
	if httpErr.Code != http.StatusBadRequest { t.Errorf("expected 400, got %d", httpErr.Code) }
}

func TestUpsert_Handler(t *testing.T) {
	h := seededHandler(t)
	e := echo.New()
	body := `{"main_disease":"高血圧","sheet_name":"血圧140-90以下","goal1":"新しい目標","nonsmoker":true}`
	req := httptest.NewRequest(http.MethodPut, "/templates", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Upsert(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusOK { t.Fatalf("expected 200, got %d", rec.Code) }

	var tpl Template
	if err := json.Unmarshal(rec.Body.Bytes(), &tpl); err != nil { t.Fatalf("unmarshal: %v", err) }
	if tpl.ID == 0 { t.Error("expected template id to be set") }
	if tpl.Goal1 != "新しい目標" { t.Errorf("unexpected goal1 %q", tpl.Goal1) }
}

func TestUpsert_Handler_MissingKey(t *testing.T) {
	h := seededHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/templates", strings.NewReader(`{"goal1":"目標のみ"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Upsert(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok { t.Fatalf("expected echo.HTTPError, got %T", err) }
	if httpErr.Code != http.StatusBadRequest { t.Errorf("expected 400, got %d", httpErr.Code) }
}

func TestList_Handler(t *testing.T) {
	h := seededHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusOK { t.Fatalf("expected 200, got %d", rec.Code) }

	var items []Template
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil { t.Fatalf("unmarshal: %v", err) }
	if len(items) != 8 { t.Errorf("expected 8 templates, got %d", len(items)) }
}
