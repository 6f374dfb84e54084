// Package auth holds the caller-identity model shared by middleware,
// use cases and the domain layer.
package auth

// UserRole is the role attached to a user record and to every ticket message.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) String() string {
	return string(r)
}
