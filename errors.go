package easydata

import (
	"errors"
)

var (
	// ErrInvalidInput is returned when a nil or uninitialized value is classified.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoSuchField is returned when an object has no field with the requested name.
	ErrNoSuchField = errors.New("no such field")

	errNoSourceCode = errors.New("no source code")
)
