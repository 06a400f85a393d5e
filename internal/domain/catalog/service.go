package catalog

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListMainDiseases(ctx context.Context) ([]*MainDisease, error) {
	return s.repo.ListMainDiseases(ctx)
}

// ListSheetNames returns the sheet names for one main disease, or all sheet
// names when mainDiseaseID is zero.
func (s *Service) ListSheetNames(ctx context.Context, mainDiseaseID int) ([]*SheetName, error) {
	return s.repo.ListSheetNames(ctx, mainDiseaseID)
}

var defaultMainDiseases = []MainDisease{
	{ID: 1, Name: "高血圧"},
	{ID: 2, Name: "脂質異常症"},
	{ID: 3, Name: "糖尿病"},
}

var defaultSheetNames = []SheetName{
	{MainDiseaseID: 1, Name: "血圧140-90以下"},
	{MainDiseaseID: 1, Name: "血圧130-80以下"},
	{MainDiseaseID: 2, Name: "LDL120以下"},
	{MainDiseaseID: 2, Name: "LDL100以下"},
	{MainDiseaseID: 2, Name: "LDL70以下"},
	{MainDiseaseID: 3, Name: "HbAc８％"},
	{MainDiseaseID: 3, Name: "HbAc７％"},
	{MainDiseaseID: 3, Name: "HbAc６％"},
}

// Seed inserts the default disease and sheet name catalogs. Each catalog is
// seeded only when its table is empty, so repeated startups never duplicate
// rows or overwrite operator edits.
func (s *Service) Seed(ctx context.Context) error {
	n, err := s.repo.CountMainDiseases(ctx)
	if err != nil {
		return fmt.Errorf("count main diseases: %w", err)
	}
	if n == 0 {
		for i := range defaultMainDiseases {
			d := defaultMainDiseases[i]
			if err := s.repo.InsertMainDisease(ctx, &d); err != nil {
				return fmt.Errorf("seed main disease %q: %w", d.Name, err)
			}
		}
	}

	n, err = s.repo.CountSheetNames(ctx)
	if err != nil {
		return fmt.Errorf("count sheet names: %w", err)
	}
	if n == 0 {
		for i := range defaultSheetNames {
			sn := defaultSheetNames[i]
			if err := s.repo.InsertSheetName(ctx, &sn); err != nil {
				return fmt.Errorf("seed sheet name %q: %w", sn.Name, err)
			}
		}
	}

	return nil
}
