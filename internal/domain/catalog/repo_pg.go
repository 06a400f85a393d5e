package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ldtp/ldtp/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *repoPG) ListMainDiseases(ctx context.Context) ([]*MainDisease, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT id, name FROM main_diseases ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*MainDisease
	for rows.Next() {
		var d MainDisease
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}

func (r *repoPG) ListSheetNames(ctx context.Context, mainDiseaseID int) ([]*SheetName, error) {
	query := `SELECT id, main_disease_id, name FROM sheet_names ORDER BY id`
	args := []interface{}{}
	if mainDiseaseID > 0 {
		query = `SELECT id, main_disease_id, name FROM sheet_names WHERE main_disease_id = $1 ORDER BY id`
		args = append(args, mainDiseaseID)
	}

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*SheetName
	for rows.Next() {
		var s SheetName
		if err := rows.Scan(&s.ID, &s.MainDiseaseID, &s.Name); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}

func (r *repoPG) CountMainDiseases(ctx context.Context) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM main_diseases`).Scan(&n)
	return n, err
}

func (r *repoPG) CountSheetNames(ctx context.Context) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM sheet_names`).Scan(&n)
	return n, err
}

func (r *repoPG) InsertMainDisease(ctx context.Context, d *MainDisease) error {
	_, err := r.conn(ctx).Exec(ctx,
		`INSERT INTO main_diseases (id, name) VALUES ($1, $2)`, d.ID, d.Name)
	return err
}

func (r *repoPG) InsertSheetName(ctx context.Context, s *SheetName) error {
	return r.conn(ctx).QueryRow(ctx,
		`INSERT INTO sheet_names (main_disease_id, name) VALUES ($1, $2) RETURNING id`,
		s.MainDiseaseID, s.Name).Scan(&s.ID)
}
