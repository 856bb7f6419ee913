package patient

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/zeelandhospital/api/internal/platform/apperr"
)

// dummyHash is compared against when a login identifier is unknown, so
// the unknown-identifier path costs a bcrypt verification just like the
// wrong-password path.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("zeeland-login-filler"), bcrypt.DefaultCost)

type Service struct {
	patients Repository
	cost     int
}

// NewService creates the patient service. cost is the bcrypt cost used
// when hashing registration passwords; values below bcrypt.MinCost fall
// back to bcrypt.DefaultCost.
func NewService(patients Repository, cost int) *Service {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Service{patients: patients, cost: cost}
}

// Register validates the payload, rejects duplicates on email or
// patientId, and persists a new patient with a hashed password. The
// duplicate pre-check only improves the error message; the store's
// unique indexes settle concurrent registrations.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Patient, error) {
	required := []struct {
		field, value string
	}{
		{"name", req.Name},
		{"surname", req.Surname},
		{"email", req.Email},
		{"phone", req.Phone},
		{"emergency", req.Emergency},
		{"password", req.Password},
		{"patientId", req.PatientID},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, apperr.Validation("%s is required", f.field)
		}
	}

	exists, err := s.patients.ExistsByEmailOrPatientID(ctx, req.Email, req.PatientID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("patient already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	p := &Patient{
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		Phone:        req.Phone,
		Emergency:    req.Emergency,
		PasswordHash: string(hash),
		PatientID:    req.PatientID,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Login verifies identifier (email or patientId) and password and
// returns the patientId. Unknown identifier and wrong password fail
// with the same auth error.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, error) {
	if identifier == "" || password == "" {
		return "", apperr.Auth("missing credentials")
	}

	p, err := s.patients.FindByIdentifier(ctx, identifier)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", apperr.Auth("unknown identifier or wrong password")
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		return "", apperr.Auth("unknown identifier or wrong password")
	}
	return p.PatientID, nil
}

// Directory returns all patients projected for doctor-facing listings.
func (s *Service) Directory(ctx context.Context) ([]Summary, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]Summary, 0, len(patients))
	for _, p := range patients {
		summaries = append(summaries, p.Summary())
	}
	return summaries, nil
}
