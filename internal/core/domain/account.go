package domain

// Role is the capability tag carried by an Account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole accepts only the known roles; anything else is ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// Account models a registered identity. Accounts are immutable once created.
type Account struct {
	DisplayName string `json:"name"`
	Username    string `json:"username"`
	Password    string `json:"-"`
	Role        Role   `json:"role"`
}

// IsAdmin reports whether the account may update or delete any reservation.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
