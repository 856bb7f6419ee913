package patient

import (
	"context"
)

// Repository is the persistence boundary for patient records. The
// store owns the authoritative unique constraints on email and
// patient_id; Create must report a violation as a conflict error.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	// FindByIdentifier returns the patient whose email or patientId
	// equals identifier, or a not-found error.
	FindByIdentifier(ctx context.Context, identifier string) (*Patient, error)
	// ExistsByEmailOrPatientID is the fast-path duplicate check used by
	// registration for a friendlier error message. The unique indexes
	// remain authoritative.
	ExistsByEmailOrPatientID(ctx context.Context, email, patientID string) (bool, error)
	List(ctx context.Context) ([]*Patient, error)
}
