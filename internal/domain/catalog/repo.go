package catalog

import "context"

// Repository provides access to the disease and sheet name catalogs.
type Repository interface {
	ListMainDiseases(ctx context.Context) ([]*MainDisease, error)
	ListSheetNames(ctx context.Context, mainDiseaseID int) ([]*SheetName, error)
	CountMainDiseases(ctx context.Context) (int, error)
	CountSheetNames(ctx context.Context) (int, error)
	InsertMainDisease(ctx context.Context, d *MainDisease) error
	InsertSheetName(ctx context.Context, s *SheetName) error
}
