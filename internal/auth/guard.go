package auth

import "fmt"

// RoleGuard gates an operation to a static set of roles. It is evaluated
// at the top of a resolver body, before any store access.
type RoleGuard struct {
	tokens *TokenService
}

func NewRoleGuard(tokens *TokenService) *RoleGuard {
	return &RoleGuard{tokens: tokens}
}

// Require verifies the token and checks its role against the accepted set.
// Missing or invalid tokens are ErrUnauthenticated; a valid token with a
// role outside the set is ErrForbidden.
func (g *RoleGuard) Require(token string, allowed ...Role) (Identity, error) {
	if token == "" {
		return Identity{}, ErrUnauthenticated
	}

	ident, err := g.tokens.VerifyToken(token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	for _, role := range allowed {
		if ident.Role == role {
			return ident, nil
		}
	}
	return Identity{}, ErrForbidden
}
