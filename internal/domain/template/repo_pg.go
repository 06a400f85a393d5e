package template

import (
	"context"
	"errors"

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

const tplCols = `id, main_disease, sheet_name, goal1, goal2, diet,
	exercise_prescription, exercise_time, exercise_frequency, exercise_intensity,
	daily_activity, nonsmoker, other1, other2`

func scanTpl(row pgx.Row) (*Template, error) {
	var t Template
	err := row.Scan(&t.ID, &t.MainDisease, &t.SheetName, &t.Goal1, &t.Goal2, &t.Diet,
		&t.ExercisePrescription, &t.ExerciseTime, &t.ExerciseFrequency, &t.ExerciseIntensity,
		&t.DailyActivity, &t.Nonsmoker, &t.Other1, &t.Other2)
	return &t, err
}

func (r *repoPG) GetByKey(ctx context.Context, mainDisease, sheetName string) (*Template, error) {
	t, err := scanTpl(r.conn(ctx).QueryRow(ctx,
		`SELECT `+tplCols+` FROM templates WHERE main_disease = $1 AND sheet_name = $2`,
		mainDisease, sheetName))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *repoPG) Upsert(ctx context.Context, t *Template) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO templates (main_disease, sheet_name, goal1, goal2, diet,
			exercise_prescription, exercise_time, exercise_frequency, exercise_intensity,
			daily_activity, nonsmoker, other1, other2)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (main_disease, sheet_name) DO UPDATE SET
			goal1 = EXCLUDED.goal1,
			goal2 = EXCLUDED.goal2,
			diet = EXCLUDED.diet,
			exercise_prescription = EXCLUDED.exercise_prescription,
			exercise_time = EXCLUDED.exercise_time,
			exercise_frequency = EXCLUDED.exercise_frequency,
			exercise_intensity = EXCLUDED.exercise_intensity,
			daily_activity = EXCLUDED.daily_activity,
			nonsmoker = EXCLUDED.nonsmoker,
			other1 = EXCLUDED.other1,
			other2 = EXCLUDED.other2
		RETURNING id`,
		t.MainDisease, t.SheetName, t.Goal1, t.Goal2, t.Diet,
		t.ExercisePrescription, t.ExerciseTime, t.ExerciseFrequency, t.ExerciseIntensity,
		t.DailyActivity, t.Nonsmoker, t.Other1, t.Other2).Scan(&t.ID)
}

func (r *repoPG) List(ctx context.Context) ([]*Template, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+tplCols+` FROM templates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Template
	for rows.Next() {
		t, err := scanTpl(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *repoPG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM templates`).Scan(&n)
	return n, err
}
