package ticket

import (
	"context"
	"errors"

	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
)

// ErrTicketClosed is returned by AppendMessage when the status guard rejects
// the write because the ticket closed between the caller's read and the append.
var ErrTicketClosed = errors.New("ticket is closed")

// OwnerInfo is the slice of the owning user joined onto ticket listings.
type OwnerInfo struct {
	Name        string
	Email       string
	CompanyName string
}

// WithOwner pairs a ticket with its owner's public fields for list views.
type WithOwner struct {
	Ticket *Ticket
	Owner  OwnerInfo
}

// Repository is the persistence port for tickets.
//
// AppendMessage and ResetUnread are deliberately store-side atomic: two
// concurrent appends to the same ticket must never lose a message or an
// unread increment, so implementations must not fetch-then-write.
type Repository interface {
	// Create inserts the ticket. A second ticket for the same AWB number
	// surfaces as a conflict error from the unique key, not a crash.
	Create(ctx context.Context, t *Ticket) error

	// FindByID returns a not-found error when the id is absent.
	FindByID(ctx context.Context, id uint) (*Ticket, error)

	// ListByOwner returns the user's tickets newest first with owner info.
	ListByOwner(ctx context.Context, userID uint) ([]*WithOwner, error)

	// ListAll returns every ticket newest first with owner info.
	ListAll(ctx context.Context) ([]*WithOwner, error)

	// AppendMessage atomically appends msg to the ticket's log and increments
	// the unread counter of the role opposite the sender, in one store-side
	// update guarded by status = open. It returns a not-found error when the
	// ticket is gone and a conflict-free "closed" signal via ErrTicketClosed
	// when the guard rejects the write.
	AppendMessage(ctx context.Context, ticketID uint, msg Message) error

	// ResetUnread atomically zeroes the unread counter of the given role.
	ResetUnread(ctx context.Context, ticketID uint, role auth.UserRole) error
}
