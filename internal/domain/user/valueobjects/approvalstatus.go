package valueobjects

import (
	"fmt"
	"strings"
)

// ApprovalStatus represents the admin-approval state of a user account.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

var validStatuses = map[ApprovalStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
}

// ParseApprovalStatus parses a string to ApprovalStatus (case-insensitive).
func ParseApprovalStatus(value string) (ApprovalStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	status := ApprovalStatus(normalized)

	if normalized == "" {
		return "", fmt.Errorf("approval status cannot be empty")
	}

	if !validStatuses[status] {
		return "", fmt.Errorf("invalid approval status: %s", value)
	}

	return status, nil
}

func (s ApprovalStatus) IsValid() bool {
	return validStatuses[s]
}

func (s ApprovalStatus) String() string {
	return string(s)
}

func (s ApprovalStatus) IsPending() bool {
	return s == StatusPending
}

func (s ApprovalStatus) IsApproved() bool {
	return s == StatusApproved
}

func (s ApprovalStatus) IsRejected() bool {
	return s == StatusRejected
}
