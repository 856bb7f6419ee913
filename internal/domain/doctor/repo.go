package doctor

import (
	"context"
)

// Repository is the persistence boundary for doctor records. The store
// owns the authoritative unique constraint on email; Create must report
// a violation as a conflict error.
type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	FindByEmail(ctx context.Context, email string) (*Doctor, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
