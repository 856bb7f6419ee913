package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zeelandhospital/api/internal/platform/apperr"
	"github.com/zeelandhospital/api/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, name, surname, email, phone, emergency, password_hash, patient_id,
	created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Surname, &p.Email, &p.Phone, &p.Emergency,
		&p.PasswordHash, &p.PatientID, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO patient (id, name, surname, email, phone, emergency, password_hash, patient_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Surname, p.Email, p.Phone, p.Emergency, p.PasswordHash, p.PatientID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return apperr.Conflict("patient already registered")
		}
		return apperr.Storage(err, "insert patient")
	}
	return nil
}

func (r *repoPG) FindByIdentifier(ctx context.Context, identifier string) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE email = $1 OR patient_id = $1`, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("no patient with identifier %q", identifier)
		}
		return nil, apperr.Storage(err, "find patient")
	}
	return p, nil
}

func (r *repoPG) ExistsByEmailOrPatientID(ctx context.Context, email, patientID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM patient WHERE email = $1 OR patient_id = $2)`,
		email, patientID).Scan(&exists)
	if err != nil {
		return false, apperr.Storage(err, "check existing patient")
	}
	return exists, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patient ORDER BY surname, name`)
	if err != nil {
		return nil, apperr.Storage(err, "list patients")
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, apperr.Storage(err, "scan patient")
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err, "iterate patients")
	}
	return items, nil
}
