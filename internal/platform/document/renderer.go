package document

import "time"

// Renderer produces downloadable documents from issued plan records.
type Renderer struct {
	store        *Store
	fontPath     string
	workbookPath string
	now          func() time.Time
}

// NewRenderer wires a renderer to its temp store, the Japanese TTF used by
// the PDF layout, and the macro-enabled template workbook.
func NewRenderer(store *Store, fontPath, workbookPath string) *Renderer {
	return &Renderer{
		store:        store,
		fontPath:     fontPath,
		workbookPath: workbookPath,
		now:          time.Now,
	}
}
