package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/Hardik-Dharmik/shipping-b/internal/domain/user/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
)

// User is the account aggregate. Accounts are created pending and only ever
// mutated through approval transitions; there is no hard delete.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	companyName  string
	role         auth.UserRole
	status       vo.ApprovalStatus
	fileURL      string
	fileName     string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a pending regular user, the registration path.
func NewUser(name, email, passwordHash, companyName, fileURL, fileName string) (*User, error) {
	return newUser(name, email, passwordHash, companyName, fileURL, fileName, auth.RoleUser, vo.StatusPending)
}

// NewAdmin creates a pre-approved admin account, the out-of-band creation path
// used by the create-admin command.
func NewAdmin(name, email, passwordHash, companyName string) (*User, error) {
	return newUser(name, email, passwordHash, companyName, "", "", auth.RoleAdmin, vo.StatusApproved)
}

func newUser(name, email, passwordHash, companyName, fileURL, fileName string, role auth.UserRole, status vo.ApprovalStatus) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		name:         name,
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: passwordHash,
		companyName:  companyName,
		role:         role,
		status:       status,
		fileURL:      fileURL,
		fileName:     fileName,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a User from persistence.
func Reconstruct(
	id uint,
	name, email, passwordHash, companyName string,
	role auth.UserRole,
	status vo.ApprovalStatus,
	fileURL, fileName string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid approval status: %s", status)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		companyName:  companyName,
		role:         role,
		status:       status,
		fileURL:      fileURL,
		fileName:     fileName,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                  { return u.id }
func (u *User) Name() string              { return u.name }
func (u *User) Email() string             { return u.email }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) CompanyName() string       { return u.companyName }
func (u *User) Role() auth.UserRole       { return u.role }
func (u *User) Status() vo.ApprovalStatus { return u.status }
func (u *User) FileURL() string           { return u.fileURL }
func (u *User) FileName() string          { return u.fileName }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) IsApproved() bool {
	return u.status.IsApproved()
}

// Approve transitions the account to approved. Approving an account that is
// already approved is an error, not a no-op; a rejected account may be
// approved afterwards.
func (u *User) Approve() error {
	if u.status.IsApproved() {
		return fmt.Errorf("user is already approved")
	}
	u.status = vo.StatusApproved
	u.updatedAt = time.Now()
	return nil
}

// Reject transitions the account to rejected, symmetric with Approve.
func (u *User) Reject() error {
	if u.status.IsRejected() {
		return fmt.Errorf("user is already rejected")
	}
	u.status = vo.StatusRejected
	u.updatedAt = time.Now()
	return nil
}
