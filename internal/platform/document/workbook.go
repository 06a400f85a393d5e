package document

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ldtp/ldtp/internal/domain/plan"
)

// Sheet names in the template workbook.
const (
	SheetPatient = "患者"
	SheetPlan    = "計画書"
)

// workbookCells maps each field to its fixed cell in the template workbook.
var workbookCells = []struct {
	sheet string
	cell  string
	value func(*Snapshot) string
}{
	{SheetPatient, "C3", func(s *Snapshot) string { return s.PatientID }},
	{SheetPatient, "C4", func(s *Snapshot) string { return s.PatientName }},
	{SheetPatient, "C5", func(s *Snapshot) string { return s.Kana }},
	{SheetPatient, "C6", func(s *Snapshot) string { return s.Gender }},
	{SheetPatient, "C7", func(s *Snapshot) string { return s.Birthdate }},
	{SheetPatient, "C8", func(s *Snapshot) string { return s.DoctorName }},
	{SheetPatient, "C9", func(s *Snapshot) string { return s.Department }},
	{SheetPlan, "C3", func(s *Snapshot) string { return s.IssueDate }},
	{SheetPlan, "C4", func(s *Snapshot) string { return s.MainDiagnosis }},
	{SheetPlan, "C5", func(s *Snapshot) string { return s.SheetName }},
	{SheetPlan, "C6", func(s *Snapshot) string { return s.CreationCount }},
	{SheetPlan, "C7", func(s *Snapshot) string { return s.TargetWeight }},
	{SheetPlan, "C8", func(s *Snapshot) string { return s.Goal1 }},
	{SheetPlan, "C9", func(s *Snapshot) string { return s.Goal2 }},
	{SheetPlan, "C10", func(s *Snapshot) string { return s.Diet }},
	{SheetPlan, "C11", func(s *Snapshot) string { return s.ExercisePrescription }},
	{SheetPlan, "C12", func(s *Snapshot) string { return s.ExerciseTime }},
	{SheetPlan, "C13", func(s *Snapshot) string { return s.ExerciseFrequency }},
	{SheetPlan, "C14", func(s *Snapshot) string { return s.ExerciseIntensity }},
	{SheetPlan, "C15", func(s *Snapshot) string { return s.DailyActivity }},
	{SheetPlan, "C16", func(s *Snapshot) string { return s.Nonsmoker }},
	{SheetPlan, "C17", func(s *Snapshot) string { return s.SmokingCessation }},
	{SheetPlan, "C18", func(s *Snapshot) string { return s.Other1 }},
	{SheetPlan, "C19", func(s *Snapshot) string { return s.Other2 }},
}

// RenderWorkbook fills the template workbook with the record's fields and
// saves it under a timestamped name so successive exports never collide. The
// macro-enabled extension is preserved.
func (r *Renderer) RenderWorkbook(rec *plan.Record) (string, error) {
	snap, err := NewSnapshot(rec)
	if err != nil {
		return "", fmt.Errorf("render workbook: %w", err)
	}

	wb, err := excelize.OpenFile(r.workbookPath)
	if err != nil {
		return "", fmt.Errorf("open template workbook: %w", err)
	}
	defer wb.Close()

	for _, c := range workbookCells {
		if err := wb.SetCellValue(c.sheet, c.cell, c.value(snap)); err != nil {
			return "", fmt.Errorf("set %s!%s: %w", c.sheet, c.cell, err)
		}
	}

	filename := fmt.Sprintf("計画書_%s.xlsm", timestamp(r.now()))
	path, err := r.store.Path(filename)
	if err != nil {
		return "", fmt.Errorf("render workbook: %w", err)
	}
	if err := wb.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return filename, nil
}
