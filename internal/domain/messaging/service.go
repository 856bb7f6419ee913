package messaging

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeelandhospital/api/internal/platform/apperr"
)

type Service struct {
	messages Repository
}

func NewService(messages Repository) *Service {
	return &Service{messages: messages}
}

// Send persists a new message between two participants.
func (s *Service) Send(ctx context.Context, from, to, body string) (*Message, error) {
	if from == "" {
		return nil, apperr.Validation("from is required")
	}
	if to == "" {
		return nil, apperr.Validation("to is required")
	}
	if body == "" {
		return nil, apperr.Validation("message is required")
	}

	m := &Message{From: from, To: to, Body: body}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Thread returns every message the participant sent or received,
// earliest first.
func (s *Service) Thread(ctx context.Context, participantID string) ([]*Message, error) {
	if participantID == "" {
		return nil, apperr.Validation("participant id is required")
	}
	return s.messages.ListByParticipant(ctx, participantID)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Message, error) {
	return s.messages.GetByID(ctx, id)
}

// Update replaces the message body. The creation timestamp is never
// touched, so thread order is stable across edits.
func (s *Service) Update(ctx context.Context, id uuid.UUID, body string) (*Message, error) {
	if body == "" {
		return nil, apperr.Validation("message is required")
	}
	m, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Body = body
	if err := s.messages.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes the message. Deleting an absent message reports
// not-found, including on a repeated delete.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.messages.Delete(ctx, id)
}
