package auth

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSupplier Role = "supplier"
)

// ParseRole validates a caller-supplied role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleSupplier:
		return Role(s), true
	}
	return "", false
}
