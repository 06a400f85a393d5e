package document

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestPDFFilename(t *testing.T) {
	if got := PDFFilename("山田太郎"); got != "計画書_山田太郎.pdf" {
		t.Errorf("PDFFilename = %q, want 計画書_山田太郎.pdf", got)
	}
}

func TestRenderPDF_MissingFont(t *testing.T) {
	store := newTestStore(t)
	r := NewRenderer(store, filepath.Join(t.TempDir(), "absent.ttf"), "")

	if _, err := r.RenderPDF(testRecord()); err == nil {
		t.Fatal("expected error for missing font file")
	}
}

func TestRenderPDF_InvalidRecord(t *testing.T) {
	store := newTestStore(t)
	r := NewRenderer(store, "ipaexg.ttf", "")

	rec := testRecord()
	rec.PatientName = ""
	if _, err := r.RenderPDF(rec); !errors.Is(err, ErrMissingName) {
		t.Errorf("want ErrMissingName, got %v", err)
	}
}
