package domain

import "errors"

// Domain errors. Handlers match these with errors.Is and turn them into a
// flash message plus redirect; anything else is treated as a server fault.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownItem        = errors.New("unknown catalog item")
	ErrInvalidSize        = errors.New("unknown size")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
)
