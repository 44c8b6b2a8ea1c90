package engine

import (
	"context"
	"errors"
	"fmt"
)

// ErrTimeLimitExceeded is returned when the configured wall-clock budget is
// exceeded mid-search. Every bound recorded in the cache up to that point
// remains sound; there is no retry inside the engine.
var ErrTimeLimitExceeded = fmt.Errorf("engine: time limit exceeded: %w", context.DeadlineExceeded)

// ErrInternalInvariant marks a violated engine invariant (a bug, never
// recovered from).
var ErrInternalInvariant = errors.New("engine: internal invariant violated")
