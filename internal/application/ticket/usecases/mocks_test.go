package usecases

import (
	"context"
	"io"
	"sync"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/order"
	"github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
)

type mockTicketRepository struct {
	CreateFunc        func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc      func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListByOwnerFunc   func(ctx context.Context, userID uint) ([]*ticket.WithOwner, error)
	ListAllFunc       func(ctx context.Context) ([]*ticket.WithOwner, error)
	AppendMessageFunc func(ctx context.Context, ticketID uint, msg ticket.Message) error
	ResetUnreadFunc   func(ctx context.Context, ticketID uint, role auth.UserRole) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByOwner(ctx context.Context, userID uint) ([]*ticket.WithOwner, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListAll(ctx context.Context) ([]*ticket.WithOwner, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) AppendMessage(ctx context.Context, ticketID uint, msg ticket.Message) error {
	if m.AppendMessageFunc != nil {
		return m.AppendMessageFunc(ctx, ticketID, msg)
	}
	return nil
}

func (m *mockTicketRepository) ResetUnread(ctx context.Context, ticketID uint, role auth.UserRole) error {
	if m.ResetUnreadFunc != nil {
		return m.ResetUnreadFunc(ctx, ticketID, role)
	}
	return nil
}

type mockOrderRepository struct {
	FindByAWBFunc func(ctx context.Context, awbNumber string) (*order.Order, error)
}

func (m *mockOrderRepository) FindByAWB(ctx context.Context, awbNumber string) (*order.Order, error) {
	if m.FindByAWBFunc != nil {
		return m.FindByAWBFunc(ctx, awbNumber)
	}
	return nil, nil
}

type mockAttachmentStore struct {
	StoreFunc func(ctx context.Context, ticketID uint, originalName string, body io.Reader, contentType string, size int64) (string, error)
}

func (m *mockAttachmentStore) Store(ctx context.Context, ticketID uint, originalName string, body io.Reader, contentType string, size int64) (string, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, ticketID, originalName, body, contentType, size)
	}
	return "https://files.example.com/attachment", nil
}

// appendLog is a minimal store that mirrors the repository's atomicity
// contract: appends and counter bumps happen under one lock.
type appendLog struct {
	mu               sync.Mutex
	closed           bool
	messages         []ticket.Message
	unreadAdminCount int
	unreadUserCount  int
}

func (l *appendLog) append(msg ticket.Message) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ticket.ErrTicketClosed
	}
	l.messages = append(l.messages, msg)
	if ticket.CounterToIncrement(msg.SenderRole) == auth.RoleAdmin {
		l.unreadAdminCount++
	} else {
		l.unreadUserCount++
	}
	return nil
}
