package usecase

import "errors"

var (
	ErrInvalidURL         = errors.New("invalid URL")
	ErrEmptyURL           = errors.New("empty URL")
	ErrEmptyCode          = errors.New("short code is required")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrURLNotFound        = errors.New("URL not found")
)
