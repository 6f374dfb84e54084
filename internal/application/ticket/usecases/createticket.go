package usecases

import (
	"context"
	"strings"

	"github.com/Hardik-Dharmik/shipping-b/internal/application/ticket/dto"
	"github.com/Hardik-Dharmik/shipping-b/internal/domain/order"
	"github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

type CreateTicketCommand struct {
	AWBNumber   string
	Category    string
	Subcategory string
	Caller      auth.Identity
}

// CreateTicketUseCase opens a support ticket against a shipment order. The
// order is resolved server-side from the AWB number and its owner becomes
// the ticket owner, so an admin opening a ticket on a customer's behalf
// still produces a customer-owned ticket.
type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	orderRepo  order.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	orderRepo order.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		orderRepo:  orderRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	awb := strings.TrimSpace(cmd.AWBNumber)
	if awb == "" || strings.TrimSpace(cmd.Category) == "" || strings.TrimSpace(cmd.Subcategory) == "" {
		return nil, errors.NewValidationError("Missing required fields: awb_number, category, subcategory")
	}

	shipmentOrder, err := uc.orderRepo.FindByAWB(ctx, awb)
	if err != nil {
		return nil, err
	}

	if !cmd.Caller.IsAdmin() && !shipmentOrder.IsOwnedBy(cmd.Caller.UserID()) {
		return nil, errors.NewForbiddenError("You are not authorized to create a ticket for this order")
	}

	newTicket, err := ticket.NewTicket(awb, shipmentOrder.ID(), shipmentOrder.UserID(), cmd.Category, cmd.Subcategory)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"awb_number", awb,
		"owner_id", newTicket.UserID(),
		"created_by_admin", cmd.Caller.IsAdmin(),
	)

	return dto.FromTicket(newTicket), nil
}
