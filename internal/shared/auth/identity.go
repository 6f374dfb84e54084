package auth

// Identity is the authenticated principal for a request. It has two variants:
// a resolved user record, or the shared-secret admin token configured for
// direct administrative access without a user row. The token variant carries
// no user id, so code that attributes writes to a user must check Kind first.
type Identity struct {
	kind   IdentityKind
	userID uint
	name   string
	role   UserRole
}

type IdentityKind string

const (
	IdentityUser        IdentityKind = "user"
	IdentityAdminSecret IdentityKind = "admin_secret"
)

// NewUserIdentity builds the identity of a logged-in user.
func NewUserIdentity(userID uint, name string, role UserRole) Identity {
	return Identity{
		kind:   IdentityUser,
		userID: userID,
		name:   name,
		role:   role,
	}
}

// NewAdminSecretIdentity builds the identity behind the static admin token
// header. It acts as an admin but is not backed by a user record.
func NewAdminSecretIdentity() Identity {
	return Identity{
		kind: IdentityAdminSecret,
		role: RoleAdmin,
	}
}

func (i Identity) Kind() IdentityKind {
	return i.kind
}

func (i Identity) UserID() uint {
	return i.userID
}

func (i Identity) Name() string {
	return i.name
}

func (i Identity) Role() UserRole {
	return i.role
}

func (i Identity) IsAdmin() bool {
	return i.role.IsAdmin()
}

// IsZero reports whether the identity was never set on the request.
func (i Identity) IsZero() bool {
	return i.kind == ""
}

// ContextKey is the gin context key the auth middleware stores the Identity
// under.
const ContextKey = "identity"
