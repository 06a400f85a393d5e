package plan

import (
	"time"

	"github.com/ldtp/ldtp/internal/domain/template"
)

// Record is one issued treatment plan. Records are append-mostly: issuing and
// copying forward create new rows, and the row id doubles as the version
// order for a patient.
type Record struct {
	ID               int64      `json:"id" db:"id"`
	PatientID        int64      `json:"patient_id" db:"patient_id"`
	PatientName      string     `json:"patient_name" db:"patient_name"`
	Kana             string     `json:"kana" db:"kana"`
	Gender           string     `json:"gender" db:"gender"`
	Birthdate        *time.Time `json:"birthdate,omitempty" db:"birthdate"`
	IssueDate        time.Time  `json:"issue_date" db:"issue_date"`
	DoctorID         int64      `json:"doctor_id" db:"doctor_id"`
	DoctorName       string     `json:"doctor_name" db:"doctor_name"`
	Department       string     `json:"department" db:"department"`
	MainDiagnosis    string     `json:"main_diagnosis" db:"main_diagnosis"`
	SheetName        string     `json:"sheet_name" db:"sheet_name"`
	CreationCount    int        `json:"creation_count" db:"creation_count"`
	TargetWeight     *float64   `json:"target_weight,omitempty" db:"target_weight"`
	template.Guidance
	SmokingCessation bool      `json:"smoking_cessation" db:"smoking_cessation"`
	Template         string    `json:"template,omitempty" db:"template"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// Summary is one history table row.
type Summary struct {
	ID            int64     `json:"id" db:"id"`
	IssueDate     time.Time `json:"issue_date" db:"issue_date"`
	Department    string    `json:"department" db:"department"`
	DoctorName    string    `json:"doctor_name" db:"doctor_name"`
	MainDiagnosis string    `json:"main_diagnosis" db:"main_diagnosis"`
	SheetName     string    `json:"sheet_name" db:"sheet_name"`
	CreationCount int       `json:"creation_count" db:"creation_count"`
}

// IssueInput carries the form state for issuing a new plan. Patient and
// doctor IDs arrive as raw strings so blank and non-numeric input can be
// rejected before anything touches storage.
type IssueInput struct {
	PatientID     string   `json:"patient_id"`
	DoctorID      string   `json:"doctor_id"`
	DoctorName    string   `json:"doctor_name"`
	Department    string   `json:"department"`
	MainDiagnosis string   `json:"main_diagnosis"`
	SheetName     string   `json:"sheet_name"`
	CreationCount int      `json:"creation_count"`
	TargetWeight  *float64 `json:"target_weight,omitempty"`
	template.Guidance
	SmokingCessation bool   `json:"smoking_cessation"`
	Template         string `json:"template,omitempty"`
}
