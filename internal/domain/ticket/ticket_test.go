package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
)

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket("AWB-1001", 5, 42, "delivery", "delayed")
	require.NoError(t, err)

	assert.Equal(t, "AWB-1001", tk.AWBNumber())
	assert.Equal(t, uint(5), tk.OrderID())
	assert.Equal(t, uint(42), tk.UserID())
	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Empty(t, tk.Messages())
	assert.Zero(t, tk.UnreadAdminCount())
	assert.Zero(t, tk.UnreadUserCount())
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name        string
		awb         string
		orderID     uint
		ownerID     uint
		category    string
		subcategory string
	}{
		{"missing awb", "", 1, 1, "delivery", "delayed"},
		{"missing order", "AWB-1", 0, 1, "delivery", "delayed"},
		{"missing owner", "AWB-1", 1, 0, "delivery", "delayed"},
		{"missing category", "AWB-1", 1, 1, "", "delayed"},
		{"missing subcategory", "AWB-1", 1, 1, "delivery", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.awb, tt.orderID, tt.ownerID, tt.category, tt.subcategory)
			require.Error(t, err)
		})
	}
}

func TestTicket_CanBeAccessedBy(t *testing.T) {
	tk := reconstructOpenTicket(t, 1, 42)

	assert.True(t, tk.CanBeAccessedBy(auth.NewUserIdentity(42, "owner", auth.RoleUser)))
	assert.False(t, tk.CanBeAccessedBy(auth.NewUserIdentity(7, "other", auth.RoleUser)))
	assert.True(t, tk.CanBeAccessedBy(auth.NewUserIdentity(99, "ops", auth.RoleAdmin)))
	assert.True(t, tk.CanBeAccessedBy(auth.NewAdminSecretIdentity()))
}

func TestTicket_CanAcceptMessage(t *testing.T) {
	open := reconstructOpenTicket(t, 1, 42)
	assert.True(t, open.CanAcceptMessage())

	closed, err := Reconstruct(2, "AWB-2", 9, 42, "delivery", "lost", vo.StatusClosed,
		nil, 0, 0, time.Now(), time.Now())
	require.NoError(t, err)
	assert.False(t, closed.CanAcceptMessage())
}

func TestCounterToIncrement(t *testing.T) {
	assert.Equal(t, auth.RoleAdmin, CounterToIncrement(auth.RoleUser))
	assert.Equal(t, auth.RoleUser, CounterToIncrement(auth.RoleAdmin))
}

func TestTicket_MessagesReturnsCopy(t *testing.T) {
	msg, err := NewMessage(42, auth.RoleUser, "hello", nil)
	require.NoError(t, err)

	tk, err := Reconstruct(3, "AWB-3", 9, 42, "delivery", "delayed", vo.StatusOpen,
		[]Message{msg}, 1, 0, time.Now(), time.Now())
	require.NoError(t, err)

	got := tk.Messages()
	got[0].SenderID = 999

	assert.Equal(t, uint(42), tk.Messages()[0].SenderID)
}

func reconstructOpenTicket(t *testing.T, id, ownerID uint) *Ticket {
	t.Helper()
	tk, err := Reconstruct(id, "AWB-1001", 9, ownerID, "delivery", "delayed", vo.StatusOpen,
		nil, 0, 0, time.Now(), time.Now())
	require.NoError(t, err)
	return tk
}
