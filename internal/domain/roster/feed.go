package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// ErrNotFound is returned when no roster row matches the requested patient.
var ErrNotFound = errors.New("patient not found in roster")

// Column positions in the roster export. The file has no header row and
// carries more columns than we read; the unused ones are skipped.
const (
	colIssueDate  = 0
	colPatientID  = 2
	colName       = 3
	colKana       = 4
	colGender     = 5
	colBirthdate  = 6
	colDoctorID   = 9
	colDoctorName = 10
	colDepartment = 14
	minColumns    = 15
)

// Feed holds the roster rows loaded from the Shift-JIS CSV export.
// Lookups are served from memory; Reload re-reads the file in place.
type Feed struct {
	path string

	mu      sync.RWMutex
	entries []*Entry
}

func NewFeed(path string) *Feed {
	return &Feed{path: path}
}

// Load reads the roster file. Earlier rows win on duplicate patient IDs,
// matching the export convention that the newest visit comes first.
func (f *Feed) Load() error {
	file, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("open roster %s: %w", f.path, err)
	}
	defer file.Close()

	entries, err := parse(file)
	if err != nil {
		return fmt.Errorf("parse roster %s: %w", f.path, err)
	}

	f.mu.Lock()
	f.entries = entries
	f.mu.Unlock()
	return nil
}

// Reload re-reads the roster file, replacing the in-memory rows atomically.
func (f *Feed) Reload() error {
	return f.Load()
}

// Lookup returns the first roster row for the given patient ID.
func (f *Feed) Lookup(patientID int) (*Entry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, e := range f.entries {
		if e.PatientID == patientID {
			return e, nil
		}
	}
	return nil, ErrNotFound
}

// First returns the first roster row, used to prefill the patient ID field.
func (f *Feed) First() (*Entry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if len(f.entries) == 0 {
		return nil, ErrNotFound
	}
	return f.entries[0], nil
}

// Len reports the number of loaded roster rows.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}

func parse(r io.Reader) ([]*Entry, error) {
	reader := csv.NewReader(transform.NewReader(r, japanese.ShiftJIS.NewDecoder()))
	reader.FieldsPerRecord = -1

	var entries []*Entry
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		if len(record) < minColumns {
			return nil, fmt.Errorf("line %d: expected at least %d columns, got %d", line, minColumns, len(record))
		}

		patientID, err := strconv.Atoi(strings.TrimSpace(record[colPatientID]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid patient id %q", line, record[colPatientID])
		}

		doctorID, err := strconv.Atoi(strings.TrimSpace(record[colDoctorID]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid doctor id %q", line, record[colDoctorID])
		}

		issueDate, err := parseDate(record[colIssueDate])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid issue date %q", line, record[colIssueDate])
		}

		birthdate, err := parseDate(record[colBirthdate])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid birthdate %q", line, record[colBirthdate])
		}

		entries = append(entries, &Entry{
			IssueDate:  issueDate,
			PatientID:  patientID,
			Name:       strings.TrimSpace(record[colName]),
			Kana:       strings.TrimSpace(record[colKana]),
			Gender:     genderLabel(record[colGender]),
			Birthdate:  birthdate,
			DoctorID:   doctorID,
			DoctorName: strings.TrimSpace(record[colDoctorName]),
			Department: strings.TrimSpace(record[colDepartment]),
		})
	}

	return entries, nil
}

// genderLabel maps the export's numeric gender code: 1 is male, everything
// else is treated as female.
func genderLabel(raw string) string {
	if strings.TrimSpace(raw) == "1" {
		return "男性"
	}
	return "女性"
}

var dateLayouts = []string{
	"2006/01/02",
	"2006-01-02",
	"20060102",
	"2006/1/2",
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
