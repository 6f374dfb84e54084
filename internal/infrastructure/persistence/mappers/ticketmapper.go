package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket"
	ticketvo "github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/persistence/models"
)

type TicketMapper struct{}

func NewTicketMapper() TicketMapper {
	return TicketMapper{}
}

func (TicketMapper) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	messages := t.Messages()
	raw, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal messages: %w", err)
	}

	return &models.TicketModel{
		ID:               t.ID(),
		AWBNumber:        t.AWBNumber(),
		OrderID:          t.OrderID(),
		UserID:           t.UserID(),
		Category:         t.Category(),
		Subcategory:      t.Subcategory(),
		Status:           t.Status().String(),
		Messages:         raw,
		UnreadAdminCount: t.UnreadAdminCount(),
		UnreadUserCount:  t.UnreadUserCount(),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
	}, nil
}

func (TicketMapper) ToDomain(m *models.TicketModel) (*ticket.Ticket, error) {
	var messages []ticket.Message
	if len(m.Messages) > 0 {
		if err := json.Unmarshal(m.Messages, &messages); err != nil {
			return nil, fmt.Errorf("failed to unmarshal messages of ticket %d: %w", m.ID, err)
		}
	}

	t, err := ticket.Reconstruct(
		m.ID,
		m.AWBNumber,
		m.OrderID,
		m.UserID,
		m.Category,
		m.Subcategory,
		ticketvo.TicketStatus(m.Status),
		messages,
		m.UnreadAdminCount,
		m.UnreadUserCount,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket %d: %w", m.ID, err)
	}
	return t, nil
}
