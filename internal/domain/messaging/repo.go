package messaging

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for messages.
type Repository interface {
	Create(ctx context.Context, m *Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*Message, error)
	Update(ctx context.Context, m *Message) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByParticipant returns every message where the participant is
	// sender or recipient, ordered ascending by creation time with
	// insertion order breaking ties.
	ListByParticipant(ctx context.Context, participantID string) ([]*Message, error)
}
