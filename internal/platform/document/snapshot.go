package document

import (
	"errors"
	"fmt"
	"time"

	"github.com/ldtp/ldtp/internal/domain/plan"
)

// dateLayout is the form's date rendering (2025/04/01).
const dateLayout = "2006/01/02"

var (
	// ErrMissingName is returned when a record has no patient name to print.
	ErrMissingName = errors.New("patient name is required")
	// ErrMissingIssueDate is returned when a record has no issue date.
	ErrMissingIssueDate = errors.New("issue date is required")
)

// Snapshot is the fully formatted field set a renderer needs. All values are
// strings in the form's presentation: dates as YYYY/MM/DD, booleans as
// はい/いいえ, nil birthdate and target weight as empty strings.
type Snapshot struct {
	PatientID            string
	PatientName          string
	Kana                 string
	Gender               string
	Birthdate            string
	IssueDate            string
	DoctorName           string
	Department           string
	MainDiagnosis        string
	SheetName            string
	CreationCount        string
	TargetWeight         string
	Goal1                string
	Goal2                string
	Diet                 string
	ExercisePrescription string
	ExerciseTime         string
	ExerciseFrequency    string
	ExerciseIntensity    string
	DailyActivity        string
	Nonsmoker            string
	SmokingCessation     string
	Other1               string
	Other2               string
}

// NewSnapshot formats a record for rendering. It fails when the fields every
// layout requires (patient name, issue date) are absent.
func NewSnapshot(rec *plan.Record) (*Snapshot, error) {
	if rec.PatientName == "" {
		return nil, ErrMissingName
	}
	if rec.IssueDate.IsZero() {
		return nil, ErrMissingIssueDate
	}

	snap := &Snapshot{
		PatientID:            fmt.Sprintf("%d", rec.PatientID),
		PatientName:          rec.PatientName,
		Kana:                 rec.Kana,
		Gender:               rec.Gender,
		IssueDate:            rec.IssueDate.Format(dateLayout),
		DoctorName:           rec.DoctorName,
		Department:           rec.Department,
		MainDiagnosis:        rec.MainDiagnosis,
		SheetName:            rec.SheetName,
		CreationCount:        fmt.Sprintf("%d", rec.CreationCount),
		Goal1:                rec.Goal1,
		Goal2:                rec.Goal2,
		Diet:                 rec.Diet,
		ExercisePrescription: rec.ExercisePrescription,
		ExerciseTime:         rec.ExerciseTime,
		ExerciseFrequency:    rec.ExerciseFrequency,
		ExerciseIntensity:    rec.ExerciseIntensity,
		DailyActivity:        rec.DailyActivity,
		Nonsmoker:            FormatBool(rec.Nonsmoker),
		SmokingCessation:     FormatBool(rec.SmokingCessation),
		Other1:               rec.Other1,
		Other2:               rec.Other2,
	}
	if rec.Birthdate != nil && !rec.Birthdate.IsZero() {
		snap.Birthdate = rec.Birthdate.Format(dateLayout)
	}
	if rec.TargetWeight != nil {
		snap.TargetWeight = formatWeight(*rec.TargetWeight)
	}
	return snap, nil
}

// FormatBool localizes a boolean for the printed form.
func FormatBool(v bool) string {
	if v {
		return "はい"
	}
	return "いいえ"
}

// formatWeight drops a trailing .0 so whole-kilogram targets print clean.
func formatWeight(kg float64) string {
	if kg == float64(int64(kg)) {
		return fmt.Sprintf("%d", int64(kg))
	}
	return fmt.Sprintf("%.1f", kg)
}

// timestamp renders now as a compact filename suffix.
func timestamp(now time.Time) string {
	return now.Format("20060102150405")
}
