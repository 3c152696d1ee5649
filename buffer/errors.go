package buffer

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a line or column index beyond the current content.
var ErrOutOfBounds = errors.New("out of bounds")

// OutOfBoundsError carries the offending index.
type OutOfBoundsError struct {
	Index int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("accessed out of bounds index %d", e.Index)
}

func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }
