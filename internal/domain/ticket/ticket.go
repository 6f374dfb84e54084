package ticket

import (
	"fmt"
	"time"

	vo "github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
)

// Ticket is the support-conversation aggregate attached to a shipment order.
// The owner is always the order's owner, which may differ from the creator
// when an admin opens a ticket on a customer's behalf. The message log is
// append-only; the unread counters follow a read-receipt model, one counter
// per role, reset when that role reads the log.
type Ticket struct {
	id               uint
	awbNumber        string
	orderID          uint
	userID           uint
	category         string
	subcategory      string
	status           vo.TicketStatus
	messages         []Message
	unreadAdminCount int
	unreadUserCount  int
	createdAt        time.Time
	updatedAt        time.Time
}

// NewTicket creates an open ticket with an empty conversation for the given
// order. ownerID is the order owner's id, never the caller's.
func NewTicket(awbNumber string, orderID, ownerID uint, category, subcategory string) (*Ticket, error) {
	if awbNumber == "" {
		return nil, fmt.Errorf("awb number is required")
	}
	if orderID == 0 {
		return nil, fmt.Errorf("order ID is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if subcategory == "" {
		return nil, fmt.Errorf("subcategory is required")
	}

	now := time.Now()
	return &Ticket{
		awbNumber:   awbNumber,
		orderID:     orderID,
		userID:      ownerID,
		category:    category,
		subcategory: subcategory,
		status:      vo.StatusOpen,
		messages:    []Message{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a Ticket from persistence.
func Reconstruct(
	id uint,
	awbNumber string,
	orderID, userID uint,
	category, subcategory string,
	status vo.TicketStatus,
	messages []Message,
	unreadAdminCount, unreadUserCount int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}
	if messages == nil {
		messages = []Message{}
	}

	return &Ticket{
		id:               id,
		awbNumber:        awbNumber,
		orderID:          orderID,
		userID:           userID,
		category:         category,
		subcategory:      subcategory,
		status:           status,
		messages:         messages,
		unreadAdminCount: unreadAdminCount,
		unreadUserCount:  unreadUserCount,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) AWBNumber() string       { return t.awbNumber }
func (t *Ticket) OrderID() uint           { return t.orderID }
func (t *Ticket) UserID() uint            { return t.userID }
func (t *Ticket) Category() string        { return t.category }
func (t *Ticket) Subcategory() string     { return t.subcategory }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) UnreadAdminCount() int   { return t.unreadAdminCount }
func (t *Ticket) UnreadUserCount() int    { return t.unreadUserCount }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

func (t *Ticket) Messages() []Message {
	messagesCopy := make([]Message, len(t.messages))
	copy(messagesCopy, t.messages)
	return messagesCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// CanBeAccessedBy applies the ownership rule: admins always, non-admins only
// on tickets they own. The same rule gates reading and posting.
func (t *Ticket) CanBeAccessedBy(identity auth.Identity) bool {
	if identity.IsAdmin() {
		return true
	}
	return t.userID == identity.UserID()
}

// CanAcceptMessage reports whether the conversation still accepts appends.
func (t *Ticket) CanAcceptMessage() bool {
	return t.status.IsOpen()
}

// CounterToIncrement names the unread counter flipped when the given role
// posts: a customer message is unread for admins and vice versa.
func CounterToIncrement(senderRole auth.UserRole) auth.UserRole {
	if senderRole.IsAdmin() {
		return auth.RoleUser
	}
	return auth.RoleAdmin
}
