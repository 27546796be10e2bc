package service

import "errors"

var (
	ErrTokenEmpty   = errors.New("booking token is empty")
	ErrTokenInvalid = errors.New("booking token is invalid")
	ErrTokenExpired = errors.New("booking token has expired")
)
