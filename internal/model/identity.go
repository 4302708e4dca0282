package model

// Role is the coarse authorization tag assigned to an account.
// It controls which screens are reachable in the UI; the backing API
// re-checks permissions on every call, so these values are never a
// security boundary on their own.
type Role string

const (
	RoleUser   Role = "User"
	RoleAuthor Role = "Author"
)

// ParseRole validates a role string from an external source
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAuthor:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// Identity is the signed-in principal held by the client for the
// duration of a session.
type Identity struct {
	SubjectID   string
	DisplayName string
	Role        Role
	Credential  string // opaque bearer token; empty means not authenticated
}

// Authenticated reports whether the identity carries a credential
func (i *Identity) Authenticated() bool {
	return i != nil && i.Credential != ""
}

// HasRole reports whether the identity's role is in the allowed set.
// An empty allowed set admits any role.
func (i *Identity) HasRole(allowed ...Role) bool {
	if i == nil {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if i.Role == r {
			return true
		}
	}
	return false
}
