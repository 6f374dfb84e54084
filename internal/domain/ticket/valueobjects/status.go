package valueobjects

// TicketStatus is the two-state ticket lifecycle. Closing is one-way; there
// is no reopen transition.
type TicketStatus string

const (
	StatusOpen   TicketStatus = "open"
	StatusClosed TicketStatus = "closed"
)

func (s TicketStatus) IsValid() bool {
	return s == StatusOpen || s == StatusClosed
}

func (s TicketStatus) IsOpen() bool {
	return s == StatusOpen
}

func (s TicketStatus) IsClosed() bool {
	return s == StatusClosed
}

func (s TicketStatus) String() string {
	return string(s)
}
