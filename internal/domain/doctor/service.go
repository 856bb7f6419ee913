package doctor

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/zeelandhospital/api/internal/platform/apperr"
)

// dummyHash absorbs a bcrypt comparison when the email is unknown, so
// both login failure paths cost the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("zeeland-login-filler"), bcrypt.DefaultCost)

type Service struct {
	doctors Repository
	cost    int
}

// NewService creates the doctor service. cost is the bcrypt cost used
// when hashing registration passwords; values below bcrypt.MinCost fall
// back to bcrypt.DefaultCost.
func NewService(doctors Repository, cost int) *Service {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Service{doctors: doctors, cost: cost}
}

// Register validates the payload, rejects duplicate emails, and
// persists a new doctor with a hashed password. The duplicate pre-check
// only improves the error message; the store's unique index settles
// concurrent registrations.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Doctor, error) {
	if req.Name == "" {
		return nil, apperr.Validation("name is required")
	}
	if req.Email == "" {
		return nil, apperr.Validation("email is required")
	}
	if req.Password == "" {
		return nil, apperr.Validation("password is required")
	}

	exists, err := s.doctors.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("doctor already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	d := &Doctor{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Login verifies email and password and returns the doctor's email.
// Unknown email and wrong password fail with the same auth error.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperr.Auth("missing credentials")
	}

	d, err := s.doctors.FindByEmail(ctx, email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", apperr.Auth("unknown email or wrong password")
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte(password)) != nil {
		return "", apperr.Auth("unknown email or wrong password")
	}
	return d.Email, nil
}
