package template

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no template exists for a key.
var ErrNotFound = errors.New("template not found")

// Repository provides access to stored guidance templates.
type Repository interface {
	GetByKey(ctx context.Context, mainDisease, sheetName string) (*Template, error)
	Upsert(ctx context.Context, t *Template) error
	List(ctx context.Context) ([]*Template, error)
	Count(ctx context.Context) (int, error)
}
