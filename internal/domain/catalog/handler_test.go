package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func seededHandler(t *testing.T) *Handler {
	t.Helper()
	svc := NewService(newMockRepo())
	if err := svc.Seed(context.Background()); err != nil { t.Fatalf("seed: %v", err) }
	return NewHandler(svc)
}

func TestListMainDiseases_Handler(t *testing.T) {
	h := seededHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/main-diseases", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListMainDiseases(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusOK { t.Fatalf("expected 200, got %d", rec.Code) }

	var items []MainDisease
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil { t.Fatalf("unmarshal: %v", err) }
	if len(items) != 3 { t.Fatalf("expected 3 diseases, got %d", len(items)) }
	if items[0].Name != "高血圧" { t.Errorf("expected 高血圧, got %q", items[0].Name) }
}

func TestListSheetNames_Handler_Filtered(t *testing.T) {
	h := seededHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sheet-names?main_disease_id=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListSheetNames(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusOK { t.Fatalf("expected 200, got %d", rec.Code) }

	var items []SheetName
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil { t.Fatalf("unmarshal: %v", err) }
	if len(items) != 3 { t.Fatalf("expected 3 sheets for 糖尿病, got %d", len(items)) }
}

func TestListSheetNames_Handler_InvalidID(t *testing.T) {
	h := seededHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sheet-names?main_disease_id=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListSheetNames(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok { t.Fatalf("expected echo.HTTPError, got %T", err) }
	if httpErr.Code != http.StatusBadRequest { t.Errorf("expected 400, got %d", httpErr.Code) }
}
