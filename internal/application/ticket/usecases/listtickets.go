package usecases

import (
	"context"

	"github.com/Hardik-Dharmik/shipping-b/internal/application/ticket/dto"
	"github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

type ListTicketsQuery struct {
	Caller auth.Identity
	// AllTickets asks for every ticket, the admin panel view. Non-admins
	// are refused; without it callers get their own tickets only.
	AllTickets bool
}

// ListTicketsUseCase lists tickets newest first: admins see everything, a
// customer sees only their own.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	if query.AllTickets && !query.Caller.IsAdmin() {
		return nil, errors.NewAdminRequiredError()
	}

	var (
		rows []*ticket.WithOwner
		err  error
	)
	if query.AllTickets || query.Caller.IsAdmin() {
		rows, err = uc.ticketRepo.ListAll(ctx)
	} else {
		rows, err = uc.ticketRepo.ListByOwner(ctx, query.Caller.UserID())
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	results := make([]*dto.TicketDTO, 0, len(rows))
	for _, row := range rows {
		results = append(results, dto.FromTicketWithOwner(row))
	}
	return results, nil
}
