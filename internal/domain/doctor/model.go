package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctor table. PasswordHash holds a bcrypt hash and
// is excluded from serialization. The doctor email space is independent
// from the patient email space.
type Doctor struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// RegisterRequest is the registration payload. All fields are required.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login payload. Doctors log in by email only.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
