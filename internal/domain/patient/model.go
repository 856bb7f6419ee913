package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. PasswordHash holds a bcrypt hash,
// never the submitted password, and is excluded from serialization.
type Patient struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Surname      string    `db:"surname" json:"surname"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	Emergency    string    `db:"emergency" json:"emergency"`
	PasswordHash string    `db:"password_hash" json:"-"`
	PatientID    string    `db:"patient_id" json:"patientId"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Summary is the directory projection of a patient. There is no
// password field here, so the credential can never serialize out of a
// directory listing.
type Summary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	PatientID string    `json:"patientId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary projects the patient for directory listings.
func (p *Patient) Summary() Summary {
	return Summary{
		ID:        p.ID,
		Name:      p.Name,
		Surname:   p.Surname,
		PatientID: p.PatientID,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
	}
}

// RegisterRequest is the registration payload. All fields are required.
type RegisterRequest struct {
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Emergency string `json:"emergency"`
	Password  string `json:"password"`
	PatientID string `json:"patientId"`
}

// LoginRequest is the login payload. Clients may send the identifier
// under "identifier", "email", or "patientId"; all three name the same
// lookup (a patient matches on either email or patientId).
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	PatientID  string `json:"patientId"`
	Password   string `json:"password"`
}

// LoginIdentifier returns the first identifier field supplied.
func (r LoginRequest) LoginIdentifier() string {
	if r.Identifier != "" {
		return r.Identifier
	}
	if r.Email != "" {
		return r.Email
	}
	return r.PatientID
}
