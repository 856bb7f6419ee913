package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Message maps to the message table. From and To are opaque participant
// identifiers (a patientId or a doctor email by convention); they are
// deliberately not validated against identity records. CreatedAt is set
// at creation and never mutated; thread order derives from it.
type Message struct {
	ID        uuid.UUID `db:"id" json:"id"`
	From      string    `db:"from_id" json:"from"`
	To        string    `db:"to_id" json:"to"`
	Body      string    `db:"body" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SendRequest is the send-message payload.
type SendRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"message"`
}

// UpdateRequest carries the mutable fields of a message.
type UpdateRequest struct {
	Body string `json:"message"`
}
