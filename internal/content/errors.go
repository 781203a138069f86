package content

import (
	"errors"
	"fmt"

	"github.com/alkime/creatoros/internal/store"
)

var (
	// ErrProfileNotFound is returned when the owner id does not resolve to a profile.
	ErrProfileNotFound = fmt.Errorf("user not found: %w", store.ErrNotFound)
	// ErrInvalidInput is returned for requests that cannot be processed as given.
	ErrInvalidInput = errors.New("invalid input")
)

// GenerationError reports a failed call to the generation service. Nothing is
// persisted when it is returned.
type GenerationError struct {
	// Op is "content" or "plan".
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
