package user

import (
	"context"

	vo "github.com/Hardik-Dharmik/shipping-b/internal/domain/user/valueobjects"
)

// Repository is the persistence port for user accounts.
type Repository interface {
	// Create inserts a new user and assigns its ID. A duplicate email
	// surfaces as a conflict error.
	Create(ctx context.Context, u *User) error

	// FindByID returns a not-found error when the id is absent.
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail returns a not-found error when the email is unknown.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List returns users newest first, optionally filtered by approval status.
	List(ctx context.Context, status *vo.ApprovalStatus) ([]*User, error)

	// UpdateStatus persists the approval state and updated_at of the aggregate.
	UpdateStatus(ctx context.Context, u *User) error

	// BulkUpdateStatus transitions every listed user currently in pending
	// state to the target status and returns the users actually changed.
	// Non-pending rows are skipped, not erred.
	BulkUpdateStatus(ctx context.Context, ids []uint, target vo.ApprovalStatus) ([]*User, error)
}
