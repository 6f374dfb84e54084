package usecases

import (
	"time"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
)

// UserResult is the public projection of a user account. It never carries the
// password hash.
type UserResult struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CompanyName    string    `json:"company_name"`
	Role           string    `json:"role"`
	ApprovalStatus string    `json:"approval_status"`
	FileURL        string    `json:"file_url,omitempty"`
	FileName       string    `json:"file_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUserResult projects the aggregate's public fields.
func NewUserResult(u *user.User) *UserResult {
	return &UserResult{
		ID:             u.ID(),
		Name:           u.Name(),
		Email:          u.Email(),
		CompanyName:    u.CompanyName(),
		Role:           u.Role().String(),
		ApprovalStatus: u.Status().String(),
		FileURL:        u.FileURL(),
		FileName:       u.FileName(),
		CreatedAt:      u.CreatedAt(),
		UpdatedAt:      u.UpdatedAt(),
	}
}
