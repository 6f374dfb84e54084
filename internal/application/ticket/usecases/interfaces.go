package usecases

import (
	"context"
	"io"

	"github.com/Hardik-Dharmik/shipping-b/internal/application/ticket/dto"
	"github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket"
)

// AttachmentStore persists ticket attachments under a per-ticket prefix and
// returns the public URL of the stored object.
type AttachmentStore interface {
	Store(ctx context.Context, ticketID uint, originalName string, body io.Reader, contentType string, size int64) (url string, err error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type ReadMessagesExecutor interface {
	Execute(ctx context.Context, query ReadMessagesQuery) ([]ticket.Message, error)
}

type PostMessageExecutor interface {
	Execute(ctx context.Context, cmd PostMessageCommand) (*ticket.Message, error)
}
