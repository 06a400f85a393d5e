package plan

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

const recCols = `id, patient_id, patient_name, kana, gender, birthdate, issue_date,
	doctor_id, doctor_name, department, main_diagnosis, sheet_name, creation_count,
	target_weight, goal1, goal2, diet, exercise_prescription, exercise_time,
	exercise_frequency, exercise_intensity, daily_activity, nonsmoker,
	smoking_cessation, other1, other2, template, created_at, updated_at`

func scanRec(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.PatientID, &rec.PatientName, &rec.Kana, &rec.Gender,
		&rec.Birthdate, &rec.IssueDate, &rec.DoctorID, &rec.DoctorName, &rec.Department,
		&rec.MainDiagnosis, &rec.SheetName, &rec.CreationCount, &rec.TargetWeight,
		&rec.Goal1, &rec.Goal2, &rec.Diet, &rec.ExercisePrescription, &rec.ExerciseTime,
		&rec.ExerciseFrequency, &rec.ExerciseIntensity, &rec.DailyActivity, &rec.Nonsmoker,
		&rec.SmokingCessation, &rec.Other1, &rec.Other2, &rec.Template,
		&rec.CreatedAt, &rec.UpdatedAt)
	return &rec, err
}

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO plan_records (patient_id, patient_name, kana, gender, birthdate,
			issue_date, doctor_id, doctor_name, department, main_diagnosis, sheet_name,
			creation_count, target_weight, goal1, goal2, diet, exercise_prescription,
			exercise_time, exercise_frequency, exercise_intensity, daily_activity,
			nonsmoker, smoking_cessation, other1, other2, template)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,
			$20,$21,$22,$23,$24,$25,$26)
		RETURNING id, created_at, updated_at`,
		rec.PatientID, rec.PatientName, rec.Kana, rec.Gender, rec.Birthdate,
		rec.IssueDate, rec.DoctorID, rec.DoctorName, rec.Department, rec.MainDiagnosis,
		rec.SheetName, rec.CreationCount, rec.TargetWeight, rec.Goal1, rec.Goal2,
		rec.Diet, rec.ExercisePrescription, rec.ExerciseTime, rec.ExerciseFrequency,
		rec.ExerciseIntensity, rec.DailyActivity, rec.Nonsmoker, rec.SmokingCessation,
		rec.Other1, rec.Other2, rec.Template).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Record, error) {
	rec, err := scanRec(r.conn(ctx).QueryRow(ctx,
		`SELECT `+recCols+` FROM plan_records WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *repoPG) Update(ctx context.Context, rec *Record) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE plan_records SET patient_id=$2, patient_name=$3, kana=$4, gender=$5,
			birthdate=$6, issue_date=$7, doctor_id=$8, doctor_name=$9, department=$10,
			main_diagnosis=$11, sheet_name=$12, creation_count=$13, target_weight=$14,
			goal1=$15, goal2=$16, diet=$17, exercise_prescription=$18, exercise_time=$19,
			exercise_frequency=$20, exercise_intensity=$21, daily_activity=$22,
			nonsmoker=$23, smoking_cessation=$24, other1=$25, other2=$26, template=$27,
			updated_at=NOW()
		WHERE id = $1`,
		rec.ID, rec.PatientID, rec.PatientName, rec.Kana, rec.Gender, rec.Birthdate,
		rec.IssueDate, rec.DoctorID, rec.DoctorName, rec.Department, rec.MainDiagnosis,
		rec.SheetName, rec.CreationCount, rec.TargetWeight, rec.Goal1, rec.Goal2,
		rec.Diet, rec.ExercisePrescription, rec.ExerciseTime, rec.ExerciseFrequency,
		rec.ExerciseIntensity, rec.DailyActivity, rec.Nonsmoker, rec.SmokingCessation,
		rec.Other1, rec.Other2, rec.Template)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteLatest(ctx context.Context) (int64, error) {
	var id int64
	err := r.conn(ctx).QueryRow(ctx, `
		DELETE FROM plan_records
		WHERE id = (SELECT MAX(id) FROM plan_records)
		RETURNING id`).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repoPG) LatestByPatient(ctx context.Context, patientID int64) (*Record, error) {
	rec, err := scanRec(r.conn(ctx).QueryRow(ctx,
		`SELECT `+recCols+` FROM plan_records WHERE patient_id = $1 ORDER BY id DESC LIMIT 1`,
		patientID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *repoPG) HistoryByPatient(ctx context.Context, patientID int64) ([]*Summary, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, issue_date, department, doctor_name, main_diagnosis, sheet_name, creation_count
		FROM plan_records
		WHERE patient_id = $1
		ORDER BY patient_id ASC, id DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.IssueDate, &s.Department, &s.DoctorName,
			&s.MainDiagnosis, &s.SheetName, &s.CreationCount); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}
