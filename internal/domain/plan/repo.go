package plan

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no record matches.
	ErrNotFound = errors.New("plan record not found")
	// ErrValidation marks an input the caller can fix.
	ErrValidation = errors.New("validation failed")
)

// Repository provides access to stored plan records.
type Repository interface {
	Create(ctx context.Context, r *Record) error
	GetByID(ctx context.Context, id int64) (*Record, error)
	Update(ctx context.Context, r *Record) error
	// DeleteLatest removes the row with the globally highest id and returns
	// that id.
	DeleteLatest(ctx context.Context) (int64, error)
	// LatestByPatient returns the highest-id record for a patient.
	LatestByPatient(ctx context.Context, patientID int64) (*Record, error)
	// HistoryByPatient returns summaries ordered patient_id ASC, id DESC.
	HistoryByPatient(ctx context.Context, patientID int64) ([]*Summary, error)
}
