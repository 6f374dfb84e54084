package usecases

import (
	"context"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

type ReadMessagesQuery struct {
	TicketID uint
	Caller   auth.Identity
}

// ReadMessagesUseCase returns a ticket's conversation log. Reading is gated
// by the same ownership rule as posting, and marks the log as read for the
// caller's role by zeroing that role's unread counter, even when the log is
// empty.
type ReadMessagesUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewReadMessagesUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ReadMessagesUseCase {
	return &ReadMessagesUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ReadMessagesUseCase) Execute(ctx context.Context, query ReadMessagesQuery) ([]ticket.Message, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeAccessedBy(query.Caller) {
		return nil, errors.NewNotFoundError("Ticket not found or access denied")
	}

	if err := uc.ticketRepo.ResetUnread(ctx, t.ID(), query.Caller.Role()); err != nil {
		// The read itself succeeded; a failed counter reset is logged and
		// the messages still returned.
		uc.logger.Errorw("failed to reset unread counter", "ticket_id", t.ID(), "role", query.Caller.Role().String(), "error", err)
	}

	return t.Messages(), nil
}
