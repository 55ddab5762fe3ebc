package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrUnknownSource rejects a source batch whose label or domain the merge
	// cannot place. It matches ErrInvalidInput.
	ErrUnknownSource = fmt.Errorf("%w: unknown source", ErrInvalidInput)
)
