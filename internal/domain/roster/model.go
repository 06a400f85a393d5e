package roster

import "time"

// Entry is one patient row from the roster export.
type Entry struct {
	IssueDate  time.Time `json:"issue_date"`
	PatientID  int       `json:"patient_id"`
	Name       string    `json:"name"`
	Kana       string    `json:"kana"`
	Gender     string    `json:"gender"`
	Birthdate  time.Time `json:"birthdate"`
	DoctorID   int       `json:"doctor_id"`
	DoctorName string    `json:"doctor_name"`
	Department string    `json:"department"`
}
