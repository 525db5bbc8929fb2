package mailing

import "errors"

var (
	ErrPasswordAlreadySet = errors.New("password already set")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrSetPassword        = errors.New("failed to set password")
	ErrValidatePassword   = errors.New("failed to validate password")
	ErrInvalidUpload      = errors.New("invalid upload")
	ErrGetEmailStats      = errors.New("failed to get email stats")
)
