package messaging

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zeelandhospital/api/internal/platform/apperr"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const messageCols = `id, from_id, to_id, body, created_at, updated_at`

func scanMessage(row pgx.Row) (*Message, error) {
	var m Message
	err := row.Scan(&m.ID, &m.From, &m.To, &m.Body, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Message) error {
	m.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO message (id, from_id, to_id, body)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at, updated_at`,
		m.ID, m.From, m.To, m.Body,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return apperr.Storage(err, "insert message")
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Message, error) {
	m, err := scanMessage(r.pool.QueryRow(ctx,
		`SELECT `+messageCols+` FROM message WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("message %s not found", id)
		}
		return nil, apperr.Storage(err, "find message")
	}
	return m, nil
}

func (r *repoPG) Update(ctx context.Context, m *Message) error {
	// created_at is immutable; only the body moves.
	err := r.pool.QueryRow(ctx, `
		UPDATE message SET body = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		m.ID, m.Body,
	).Scan(&m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("message %s not found", m.ID)
		}
		return apperr.Storage(err, "update message")
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM message WHERE id = $1`, id)
	if err != nil {
		return apperr.Storage(err, "delete message")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("message %s not found", id)
	}
	return nil
}

func (r *repoPG) ListByParticipant(ctx context.Context, participantID string) ([]*Message, error) {
	// seq is a bigserial assigned at insert; it makes equal-timestamp
	// ordering match insertion order.
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageCols+` FROM message
		WHERE from_id = $1 OR to_id = $1
		ORDER BY created_at ASC, seq ASC`, participantID)
	if err != nil {
		return nil, apperr.Storage(err, "list messages")
	}
	defer rows.Close()

	var items []*Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, apperr.Storage(err, "scan message")
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err, "iterate messages")
	}
	return items, nil
}
