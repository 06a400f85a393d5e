package catalog

// MainDisease is a primary diagnosis selectable on a treatment plan.
type MainDisease struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// SheetName is a treatment target sheet associated with a main disease.
type SheetName struct {
	ID            int    `json:"id" db:"id"`
	MainDiseaseID int    `json:"main_disease_id" db:"main_disease_id"`
	Name          string `json:"name" db:"name"`
}
