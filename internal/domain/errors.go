package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownGeneratorKind is returned by the registry when a kind cannot be
// resolved. Recoverable: the caller picks another kind or aborts.
var ErrUnknownGeneratorKind = errors.New("unknown generator kind")

// ErrInvalidTemplate marks a malformed template (missing name, empty or
// duplicate field list). Generation is aborted before any rows are produced.
var ErrInvalidTemplate = errors.New("invalid template")

// GenerationError wraps a failure while constructing a single row. The batch
// loop recovers by skipping the row and continuing.
type GenerationError struct {
	Kind string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generator %q: row generation failed: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
