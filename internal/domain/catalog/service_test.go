package catalog

import (
	"context"
	"testing"
)

type mockRepo struct {
	diseases []*MainDisease
	sheets   []*SheetName
	nextID   int
}

func newMockRepo() *mockRepo { return &mockRepo{nextID: 1} }

func (m *mockRepo) ListMainDiseases(_ context.Context) ([]*MainDisease, error) {
	return m.diseases, nil
}
func (m *mockRepo) ListSheetNames(_ context.Context, mainDiseaseID int) ([]*SheetName, error) {
	if mainDiseaseID == 0 { return m.sheets, nil }
	var r []*SheetName
	for _, s := range m.sheets { if s.MainDiseaseID == mainDiseaseID { r = append(r, s) } }
	return r, nil
}
func (m *mockRepo) CountMainDiseases(_ context.Context) (int, error) { return len(m.diseases), nil }
func (m *mockRepo) CountSheetNames(_ context.Context) (int, error)   { return len(m.sheets), nil }
func (m *mockRepo) InsertMainDisease(_ context.Context, d *MainDisease) error {
	m.diseases = append(m.diseases, d); return nil
}
func (m *mockRepo) InsertSheetName(_ context.Context, s *SheetName) error {
	s.ID = m.nextID; m.nextID++; m.sheets = append(m.sheets, s); return nil
}

func TestSeed_EmptyTables(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	if err := svc.Seed(context.Background()); err != nil { t.Fatalf("unexpected error: %v", err) }

	if len(repo.diseases) != 3 { t.Fatalf("expected 3 main diseases, got %d", len(repo.diseases)) }
	if len(repo.sheets) != 8 { t.Fatalf("expected 8 sheet names, got %d", len(repo.sheets)) }

	if repo.diseases[0].Name != "高血圧" { t.Errorf("expected 高血圧 first, got %q", repo.diseases[0].Name) }
	if repo.diseases[2].Name != "糖尿病" { t.Errorf("expected 糖尿病 third, got %q", repo.diseases[2].Name) }
	if repo.sheets[0].Name != "血圧140-90以下" { t.Errorf("unexpected first sheet name %q", repo.sheets[0].Name) }
}

func TestSeed_Idempotent(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	if err := svc.Seed(context.Background()); err != nil { t.Fatalf("first seed: %v", err) }
	if err := svc.Seed(context.Background()); err != nil { t.Fatalf("second seed: %v", err) }

	if len(repo.diseases) != 3 { t.Errorf("expected 3 main diseases after reseed, got %d", len(repo.diseases)) }
	if len(repo.sheets) != 8 { t.Errorf("expected 8 sheet names after reseed, got %d", len(repo.sheets)) }
}

func TestSeed_PreservesExistingRows(t *testing.T) {
	repo := newMockRepo()
	repo.diseases = append(repo.diseases, &MainDisease{ID: 9, Name: "カスタム病名"})
	svc := NewService(repo)

	if err := svc.Seed(context.Background()); err != nil { t.Fatalf("unexpected error: %v", err) }

	// The non-empty disease catalog is left alone; sheets are still seeded.
	if len(repo.diseases) != 1 { t.Errorf("expected custom disease catalog untouched, got %d rows", len(repo.diseases)) }
	if len(repo.sheets) != 8 { t.Errorf("expected 8 sheet names, got %d", len(repo.sheets)) }
}

func TestListSheetNames_FiltersByDisease(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	if err := svc.Seed(context.Background()); err != nil { t.Fatalf("seed: %v", err) }

	sheets, err := svc.ListSheetNames(context.Background(), 2)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if len(sheets) != 3 { t.Fatalf("expected 3 sheets for 脂質異常症, got %d", len(sheets)) }
	for _, s := range sheets {
		if s.MainDiseaseID != 2 { t.Errorf("expected main_disease_id 2, got %d", s.MainDiseaseID) }
	}

	all, err := svc.ListSheetNames(context.Background(), 0)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if len(all) != 8 { t.Errorf("expected all 8 sheets, got %d", len(all)) }
}
