package ticket

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
)

// Attachment is the file triple carried by a message. The three fields are
// all-or-nothing; NewMessage enforces that by construction.
type Attachment struct {
	URL  string
	Name string
	Type string
}

// Message is an immutable entry of a ticket's conversation log. The json tags
// match the shape stored in the tickets.messages JSON column, which is also
// the wire shape returned to clients.
type Message struct {
	ID         string        `json:"id"`
	SenderID   uint          `json:"sender_id"`
	SenderRole auth.UserRole `json:"sender_role"`
	Text       *string       `json:"message"`
	FileURL    *string       `json:"file_url"`
	FileName   *string       `json:"file_name"`
	FileType   *string       `json:"file_type"`
	CreatedAt  time.Time     `json:"created_at"`
}

// NewMessage builds a message with a fresh unique id and the current
// timestamp. At least one of text and attachment must be present.
func NewMessage(senderID uint, senderRole auth.UserRole, text string, attachment *Attachment) (Message, error) {
	if !senderRole.IsValid() {
		return Message{}, fmt.Errorf("invalid sender role: %s", senderRole)
	}
	if text == "" && attachment == nil {
		return Message{}, fmt.Errorf("message or file is required")
	}
	if attachment != nil && (attachment.URL == "" || attachment.Name == "" || attachment.Type == "") {
		return Message{}, fmt.Errorf("attachment must carry url, name and type")
	}

	m := Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		SenderRole: senderRole,
		CreatedAt:  time.Now().UTC(),
	}
	if text != "" {
		m.Text = &text
	}
	if attachment != nil {
		m.FileURL = &attachment.URL
		m.FileName = &attachment.Name
		m.FileType = &attachment.Type
	}
	return m, nil
}

// HasAttachment reports whether the file triple is present.
func (m Message) HasAttachment() bool {
	return m.FileURL != nil
}
