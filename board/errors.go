package board

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition is the sentinel every Builder failure wraps.
var ErrInvalidPosition = errors.New("invalid position")

// PositionError carries the human readable reason a position was rejected.
type PositionError struct {
	Reason string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("invalid position: %s", e.Reason)
}

// Unwrap returns ErrInvalidPosition so errors.Is works on a PositionError.
func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

func invalidf(format string, args ...any) error {
	return &PositionError{Reason: fmt.Sprintf(format, args...)}
}
