package user

import "errors"

var (
	ErrEmailExists     = errors.New("email already registered")
	ErrInvalidRole     = errors.New("invalid role")
	ErrNotFound        = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)
