package template

// Guidance is the set of lifestyle guidance fields shared by templates and
// issued plan records.
type Guidance struct {
	Goal1                string `json:"goal1" db:"goal1"`
	Goal2                string `json:"goal2" db:"goal2"`
	Diet                 string `json:"diet" db:"diet"`
	ExercisePrescription string `json:"exercise_prescription" db:"exercise_prescription"`
	ExerciseTime         string `json:"exercise_time" db:"exercise_time"`
	ExerciseFrequency    string `json:"exercise_frequency" db:"exercise_frequency"`
	ExerciseIntensity    string `json:"exercise_intensity" db:"exercise_intensity"`
	DailyActivity        string `json:"daily_activity" db:"daily_activity"`
	Nonsmoker            bool   `json:"nonsmoker" db:"nonsmoker"`
	Other1               string `json:"other1" db:"other1"`
	Other2               string `json:"other2" db:"other2"`
}

// Template holds the default guidance for one (main disease, sheet name) pair.
type Template struct {
	ID          int    `json:"id" db:"id"`
	MainDisease string `json:"main_disease" db:"main_disease"`
	SheetName   string `json:"sheet_name" db:"sheet_name"`
	Guidance
}
