package service

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both a missing id and an empty listing result; handlers
// translate it to 404.
var ErrNotFound = errors.New("product not found")

// ValidationError marks client input the service refused before touching
// storage. Handlers translate it to 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
