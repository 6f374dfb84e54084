package usecases

import (
	"context"
	goerrors "errors"
	"io"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

type PostMessageCommand struct {
	TicketID uint
	Caller   auth.Identity
	Text     string

	// Optional attachment. FileName and File are set together.
	FileName        string
	FileContentType string
	FileSize        int64
	File            io.Reader
}

// PostMessageUseCase appends a message to a ticket's conversation. The
// attachment upload happens before the append so a failed upload never
// leaves a message with a broken link; the append itself is a single atomic
// repository call that also bumps the opposite role's unread counter.
type PostMessageUseCase struct {
	ticketRepo  ticket.Repository
	attachments AttachmentStore
	logger      logger.Interface
}

func NewPostMessageUseCase(
	ticketRepo ticket.Repository,
	attachments AttachmentStore,
	logger logger.Interface,
) *PostMessageUseCase {
	return &PostMessageUseCase{
		ticketRepo:  ticketRepo,
		attachments: attachments,
		logger:      logger,
	}
}

func (uc *PostMessageUseCase) Execute(ctx context.Context, cmd PostMessageCommand) (*ticket.Message, error) {
	if cmd.Text == "" && cmd.File == nil {
		return nil, errors.NewValidationError("Message or file is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeAccessedBy(cmd.Caller) {
		return nil, errors.NewNotFoundError("Ticket not found or access denied")
	}

	if !t.CanAcceptMessage() {
		return nil, errors.NewBadRequestError("Ticket is closed")
	}

	var attachment *ticket.Attachment
	if cmd.File != nil {
		url, err := uc.attachments.Store(ctx, t.ID(), cmd.FileName, cmd.File, cmd.FileContentType, cmd.FileSize)
		if err != nil {
			uc.logger.Errorw("failed to upload ticket attachment", "ticket_id", t.ID(), "file_name", cmd.FileName, "error", err)
			return nil, errors.NewUpstreamError("File upload failed")
		}
		attachment = &ticket.Attachment{
			URL:  url,
			Name: cmd.FileName,
			Type: cmd.FileContentType,
		}
	}

	msg, err := ticket.NewMessage(cmd.Caller.UserID(), cmd.Caller.Role(), cmd.Text, attachment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.AppendMessage(ctx, t.ID(), msg); err != nil {
		if goerrors.Is(err, ticket.ErrTicketClosed) {
			// Closed between our read and the append.
			return nil, errors.NewBadRequestError("Ticket is closed")
		}
		uc.logger.Errorw("failed to append message", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("message posted",
		"ticket_id", t.ID(),
		"message_id", msg.ID,
		"sender_role", msg.SenderRole.String(),
		"has_attachment", msg.HasAttachment(),
	)

	return &msg, nil
}
