package store

import "errors"

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrEmailTaken   = errors.New("email already taken")
	ErrInvalidLogin = errors.New("invalid email or password")
)
