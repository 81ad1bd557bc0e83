package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role comes from the identity provider's token claims. Admins may moderate
// reviews; members are ordinary renters/lenders.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleMember, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string { return string(r) }
