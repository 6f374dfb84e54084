package dto

import (
	"time"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket"
)

// OwnerDTO is the owning user's public contact info joined onto listings.
type OwnerDTO struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
}

// TicketDTO is the wire shape of a ticket in list and detail responses. The
// message log itself is served by the messages endpoint, not here; listings
// carry only the unread counters.
type TicketDTO struct {
	ID               uint      `json:"id"`
	AWBNumber        string    `json:"awb_number"`
	OrderID          uint      `json:"order_id"`
	UserID           uint      `json:"user_id"`
	Category         string    `json:"category"`
	Subcategory      string    `json:"subcategory"`
	Status           string    `json:"status"`
	UnreadAdminCount int       `json:"unread_admin_count"`
	UnreadUserCount  int       `json:"unread_user_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	Owner            *OwnerDTO `json:"user,omitempty"`
}

// FromTicket projects a ticket without owner info.
func FromTicket(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:               t.ID(),
		AWBNumber:        t.AWBNumber(),
		OrderID:          t.OrderID(),
		UserID:           t.UserID(),
		Category:         t.Category(),
		Subcategory:      t.Subcategory(),
		Status:           t.Status().String(),
		UnreadAdminCount: t.UnreadAdminCount(),
		UnreadUserCount:  t.UnreadUserCount(),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
	}
}

// FromTicketWithOwner projects a listing row including the owner join.
func FromTicketWithOwner(row *ticket.WithOwner) *TicketDTO {
	result := FromTicket(row.Ticket)
	result.Owner = &OwnerDTO{
		Name:        row.Owner.Name,
		Email:       row.Owner.Email,
		CompanyName: row.Owner.CompanyName,
	}
	return result
}
