package document

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/ldtp/ldtp/internal/domain/plan"
)

const pdfFontName = "plan"

// planRows lists the guidance table in print order. The printed form has no
// diet row; dietary guidance only appears in the workbook output.
var planRows = []struct {
	label string
	value func(*Snapshot) string
}{
	{"【①達成目標】", func(s *Snapshot) string { return s.Goal1 }},
	{"【②行動目標】", func(s *Snapshot) string { return s.Goal2 }},
	{"運動処方", func(s *Snapshot) string { return s.ExercisePrescription }},
	{"時間", func(s *Snapshot) string { return s.ExerciseTime }},
	{"頻度", func(s *Snapshot) string { return s.ExerciseFrequency }},
	{"強度", func(s *Snapshot) string { return s.ExerciseIntensity }},
	{"日常生活での活動量の増加", func(s *Snapshot) string { return s.DailyActivity }},
	{"非喫煙者である(はい・いいえ)", func(s *Snapshot) string { return s.Nonsmoker }},
	{"禁煙の実施方法等を指示", func(s *Snapshot) string { return s.SmokingCessation }},
	{"その他1", func(s *Snapshot) string { return s.Other1 }},
	{"その他2", func(s *Snapshot) string { return s.Other2 }},
}

// PDFFilename names the output for one patient. Re-rendering the same
// patient overwrites the previous file.
func PDFFilename(patientName string) string {
	return fmt.Sprintf("計画書_%s.pdf", patientName)
}

// RenderPDF lays the record out as the printed plan form and writes it to
// the temp dir, returning the filename for the download URL.
func (r *Renderer) RenderPDF(rec *plan.Record) (string, error) {
	snap, err := NewSnapshot(rec)
	if err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}

	filename := PDFFilename(snap.PatientName)
	path, err := r.store.Path(filename)
	if err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font(pdfFontName, "", r.fontPath)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(pdfFontName, "", 16)
	pdf.CellFormat(0, 12, "生活習慣病療養計画書", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(pdfFontName, "", 10)
	patientRows := []struct{ label, value string }{
		{"発行日", snap.IssueDate},
		{"氏名", snap.PatientName},
		{"生年月日", snap.Birthdate},
		{"性別", snap.Gender},
	}
	for _, row := range patientRows {
		pdf.CellFormat(40, 8, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, row.value, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	band := fmt.Sprintf("主病名: %s　%s", snap.MainDiagnosis, snap.SheetName)
	if snap.TargetWeight != "" {
		band += fmt.Sprintf("　目標体重: %skg", snap.TargetWeight)
	}
	pdf.CellFormat(0, 8, band, "1", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, row := range planRows {
		pdf.CellFormat(60, 8, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, row.value(snap), "1", 1, "L", false, 0, "")
	}

	if pdf.Err() {
		return "", fmt.Errorf("render pdf: %w", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return filename, nil
}
