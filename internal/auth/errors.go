package auth

import "errors"

var (
	// ErrNoSecret means the signing secret was never configured.
	ErrNoSecret = errors.New("token secret is not configured")

	// ErrInvalidToken covers bad signatures, malformed tokens and expiry.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidIdentity means a verified token carried a subject that is
	// not a numeric user id.
	ErrInvalidIdentity = errors.New("token subject is not a valid user id")

	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// ErrUnreadableHash means the stored hash is not a recognized bcrypt
	// encoding. Distinct from a plain password mismatch.
	ErrUnreadableHash = errors.New("stored password hash is not readable")
)

// PolicyError reports a password that fails the strength policy.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string {
	return "weak password: " + e.Reason
}
