package plan

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ldtp/ldtp/internal/domain/roster"
)

// Roster is the patient lookup the service issues plans against.
type Roster interface {
	Lookup(patientID int) (*roster.Entry, error)
}

type Service struct {
	repo   Repository
	roster Roster
	now    func() time.Time
}

func NewService(repo Repository, r Roster) *Service {
	return &Service{repo: repo, roster: r, now: time.Now}
}

// Issue validates the form input, snapshots the patient's demographics from
// the roster, and inserts a new plan record dated today. Nothing is written
// when validation or the roster lookup fails.
func (s *Service) Issue(ctx context.Context, in IssueInput) (*Record, error) {
	patientID, err := parseID("patient_id", in.PatientID)
	if err != nil {
		return nil, err
	}
	doctorID, err := parseID("doctor_id", in.DoctorID)
	if err != nil {
		return nil, err
	}

	entry, err := s.roster.Lookup(int(patientID))
	if err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			return nil, fmt.Errorf("%w: patient %d not in roster", ErrNotFound, patientID)
		}
		return nil, err
	}

	rec := &Record{
		PatientID:        patientID,
		PatientName:      entry.Name,
		Kana:             entry.Kana,
		Gender:           entry.Gender,
		IssueDate:        s.now(),
		DoctorID:         doctorID,
		DoctorName:       in.DoctorName,
		Department:       in.Department,
		MainDiagnosis:    in.MainDiagnosis,
		SheetName:        in.SheetName,
		CreationCount:    in.CreationCount,
		TargetWeight:     in.TargetWeight,
		Guidance:         in.Guidance,
		SmokingCessation: in.SmokingCessation,
		Template:         in.Template,
	}
	if !entry.Birthdate.IsZero() {
		bd := entry.Birthdate
		rec.Birthdate = &bd
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// CopyForward clones the patient's newest record into a new one with a fresh
// issue date and the creation count bumped by one. When the patient has no
// records yet it returns (nil, nil) and writes nothing.
func (s *Service) CopyForward(ctx context.Context, patientID int64) (*Record, error) {
	prev, err := s.repo.LatestByPatient(ctx, patientID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	next := *prev
	next.ID = 0
	next.IssueDate = s.now()
	next.CreationCount = prev.CreationCount + 1
	next.CreatedAt = time.Time{}
	next.UpdatedAt = time.Time{}

	if err := s.repo.Create(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// Update overwrites the record identified by rec.ID.
func (s *Service) Update(ctx context.Context, rec *Record) error {
	if rec.ID <= 0 {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if rec.PatientID <= 0 {
		return fmt.Errorf("%w: patient_id is required", ErrValidation)
	}
	return s.repo.Update(ctx, rec)
}

// DeleteLatest removes the record with the highest id across all patients,
// regardless of whose it is, and returns the deleted id.
func (s *Service) DeleteLatest(ctx context.Context) (int64, error) {
	return s.repo.DeleteLatest(ctx)
}

// History lists a patient's records, newest first. A blank filter yields an
// empty list rather than an error, matching the history screen behavior.
func (s *Service) History(ctx context.Context, rawPatientID string) ([]*Summary, error) {
	rawPatientID = strings.TrimSpace(rawPatientID)
	if rawPatientID == "" {
		return []*Summary{}, nil
	}
	patientID, err := strconv.ParseInt(rawPatientID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: patient_id must be numeric", ErrValidation)
	}
	items, err := s.repo.HistoryByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*Summary{}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

func parseID(field, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number", ErrValidation, field)
	}
	return id, nil
}
