package doctor

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

const doctorCols = `id, name, email, password_hash, created_at, updated_at`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Email, &d.PasswordHash, &d.CreatedAt, &d.UpdatedAt)
	return &d, err
}

func (r *repoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO doctor (id, name, email, password_hash)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at, updated_at`,
		d.ID, d.Name, d.Email, d.PasswordHash,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return apperr.Conflict("doctor already registered")
		}
		return apperr.Storage(err, "insert doctor")
	}
	return nil
}

func (r *repoPG) FindByEmail(ctx context.Context, email string) (*Doctor, error) {
	d, err := scanDoctor(r.pool.QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctor WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("no doctor with email %q", email)
		}
		return nil, apperr.Storage(err, "find doctor")
	}
	return d, nil
}

func (r *repoPG) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM doctor WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, apperr.Storage(err, "check existing doctor")
	}
	return exists, nil
}
