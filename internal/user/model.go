package user

import "mercato-be/internal/auth"

type User struct {
	ID       int
	Email    string
	Password string
	Role     auth.Role
}
