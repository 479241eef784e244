package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrSessionExpired     = errors.New("admin session expired")
)
