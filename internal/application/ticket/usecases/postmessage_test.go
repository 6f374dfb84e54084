package usecases

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket"
	ticketvo "github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

func openTicket(t *testing.T, ownerID uint) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.NewTicket("AWB-1001", 10, ownerID, "Delivery", "Delayed shipment")
	require.NoError(t, err)
	require.NoError(t, tkt.SetID(100))
	return tkt
}

func closedTicket(t *testing.T, ownerID uint) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.Reconstruct(
		100, "AWB-1001", 10, ownerID, "Delivery", "Delayed shipment",
		ticketvo.StatusClosed, nil, 0, 0,
		openTicket(t, ownerID).CreatedAt(), openTicket(t, ownerID).UpdatedAt(),
	)
	require.NoError(t, err)
	return tkt
}

func TestPostMessageUseCase_Execute_TextMessage(t *testing.T) {
	var appended *ticket.Message
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return openTicket(t, 7), nil
		},
		AppendMessageFunc: func(ctx context.Context, ticketID uint, msg ticket.Message) error {
			appended = &msg
			return nil
		},
	}

	uc := NewPostMessageUseCase(repo, &mockAttachmentStore{}, logger.NewLogger())

	msg, err := uc.Execute(context.Background(), PostMessageCommand{
		TicketID: 100,
		Caller:   auth.NewUserIdentity(7, "Jane", auth.RoleUser),
		Text:     "Where is my shipment?",
	})
	require.NoError(t, err)
	require.NotNil(t, appended)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, uint(7), msg.SenderID)
	assert.Equal(t, auth.RoleUser, msg.SenderRole)
	require.NotNil(t, msg.Text)
	assert.Equal(t, "Where is my shipment?", *msg.Text)
	assert.Nil(t, msg.FileURL)
}

func TestPostMessageUseCase_Execute_Attachment(t *testing.T) {
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return openTicket(t, 7), nil
		},
	}
	store := &mockAttachmentStore{
		StoreFunc: func(ctx context.Context, ticketID uint, name string, body io.Reader, contentType string, size int64) (string, error) {
			assert.Equal(t, uint(100), ticketID)
			assert.Equal(t, "invoice.pdf", name)
			return "https://files.example.com/100/invoice.pdf", nil
		},
	}

	uc := NewPostMessageUseCase(repo, store, logger.NewLogger())

	msg, err := uc.Execute(context.Background(), PostMessageCommand{
		TicketID:        100,
		Caller:          auth.NewUserIdentity(7, "Jane", auth.RoleUser),
		FileName:        "invoice.pdf",
		FileContentType: "application/pdf",
		FileSize:        2048,
		File:            strings.NewReader("pdf-bytes"),
	})
	require.NoError(t, err)

	assert.True(t, msg.HasAttachment())
	assert.Nil(t, msg.Text)
	require.NotNil(t, msg.FileURL)
	assert.Equal(t, "https://files.example.com/100/invoice.pdf", *msg.FileURL)
	require.NotNil(t, msg.FileName)
	assert.Equal(t, "invoice.pdf", *msg.FileName)
	require.NotNil(t, msg.FileType)
	assert.Equal(t, "application/pdf", *msg.FileType)
}

func TestPostMessageUseCase_Execute_Failures(t *testing.T) {
	t.Run("neither text nor file", func(t *testing.T) {
		uc := NewPostMessageUseCase(&mockTicketRepository{}, &mockAttachmentStore{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), PostMessageCommand{
			TicketID: 100,
			Caller:   auth.NewUserIdentity(7, "Jane", auth.RoleUser),
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "Message or file is required")
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t, 7), nil
			},
		}
		uc := NewPostMessageUseCase(repo, &mockAttachmentStore{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), PostMessageCommand{
			TicketID: 100,
			Caller:   auth.NewUserIdentity(8, "Mallory", auth.RoleUser),
			Text:     "hello",
		})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err), "ownership failures look like not-found")
	})

	t.Run("admin may post to any ticket", func(t *testing.T) {
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t, 7), nil
			},
		}
		uc := NewPostMessageUseCase(repo, &mockAttachmentStore{}, logger.NewLogger())

		msg, err := uc.Execute(context.Background(), PostMessageCommand{
			TicketID: 100,
			Caller:   auth.NewUserIdentity(99, "Admin", auth.RoleAdmin),
			Text:     "We are looking into it.",
		})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, msg.SenderRole)
	})

	t.Run("closed ticket", func(t *testing.T) {
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return closedTicket(t, 7), nil
			},
		}
		uc := NewPostMessageUseCase(repo, &mockAttachmentStore{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), PostMessageCommand{
			TicketID: 100,
			Caller:   auth.NewUserIdentity(7, "Jane", auth.RoleUser),
			Text:     "hello",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Ticket is closed")
	})

	t.Run("closed between read and append", func(t *testing.T) {
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t, 7), nil
			},
			AppendMessageFunc: func(ctx context.Context, ticketID uint, msg ticket.Message) error {
				return ticket.ErrTicketClosed
			},
		}
		uc := NewPostMessageUseCase(repo, &mockAttachmentStore{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), PostMessageCommand{
			TicketID: 100,
			Caller:   auth.NewUserIdentity(7, "Jane", auth.RoleUser),
			Text:     "hello",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Ticket is closed")
	})

	t.Run("upload failure appends nothing", func(t *testing.T) {
		appended := false
		repo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t, 7), nil
			},
			AppendMessageFunc: func(ctx context.Context, ticketID uint, msg ticket.Message) error {
				appended = true
				return nil
			},
		}
		store := &mockAttachmentStore{
			StoreFunc: func(ctx context.Context, ticketID uint, name string, body io.Reader, contentType string, size int64) (string, error) {
				return "", errors.NewUpstreamError("bucket unavailable")
			},
		}
		uc := NewPostMessageUseCase(repo, store, logger.NewLogger())

		_, err := uc.Execute(context.Background(), PostMessageCommand{
			TicketID:        100,
			Caller:          auth.NewUserIdentity(7, "Jane", auth.RoleUser),
			FileName:        "invoice.pdf",
			FileContentType: "application/pdf",
			FileSize:        2048,
			File:            strings.NewReader("pdf-bytes"),
		})
		require.Error(t, err)
		assert.False(t, appended, "no message may be appended when the upload fails")
	})
}

// N concurrent posts against one ticket must land N messages and bump the
// unread counter by exactly N when the store-side append is atomic.
func TestPostMessageUseCase_Execute_ConcurrentAppendsLoseNothing(t *testing.T) {
	const writers = 50

	log := &appendLog{}
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return openTicket(t, 7), nil
		},
		AppendMessageFunc: func(ctx context.Context, ticketID uint, msg ticket.Message) error {
			return log.append(msg)
		},
	}
	uc := NewPostMessageUseCase(repo, &mockAttachmentStore{}, logger.NewLogger())

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), PostMessageCommand{
				TicketID: 100,
				Caller:   auth.NewUserIdentity(7, "Jane", auth.RoleUser),
				Text:     fmt.Sprintf("message %d", n),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	assert.Len(t, log.messages, writers, "every concurrent append must land")
	assert.Equal(t, writers, log.unreadAdminCount, "counter must be bumped once per message")
	assert.Zero(t, log.unreadUserCount)

	seen := make(map[string]bool, writers)
	for _, msg := range log.messages {
		assert.False(t, seen[msg.ID], "message ids must be unique")
		seen[msg.ID] = true
	}
}
