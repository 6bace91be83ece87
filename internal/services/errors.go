package services

import "errors"

// Sentinel errors of the service layer. Handlers translate these to HTTP
// statuses; anything else that comes out of a store is treated as a
// persistence failure and propagated unmodified.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidEnumValue = errors.New("invalid enum value")
	ErrAlreadyRead      = errors.New("notice already read")
	ErrAlreadyLiked     = errors.New("already liked")
)
