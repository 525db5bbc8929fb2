package mailing

import "errors"

var (
	ErrPasswordAlreadySet = errors.New("password already set")
	ErrPasswordNotSet     = errors.New("password not set")
	ErrInvalidIncrement   = errors.New("increment must be positive")
)
