package playback

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpeed indicates a non-positive playback interval.
	ErrInvalidSpeed = errors.New("playback: speed must be a positive number of milliseconds")

	// ErrCursorRange indicates a seek outside the loaded trace.
	ErrCursorRange = errors.New("playback: cursor outside trace")

	// ErrTickerReused indicates Run was called on a ticker that already ran.
	ErrTickerReused = errors.New("playback: ticker already used")
)

// ContractError reports a caller mistake. It is returned instead of
// clamping or ignoring the bad argument.
type ContractError struct {
	Op      string
	Value   int
	Wrapped error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s(%d): %v", e.Op, e.Value, e.Wrapped)
}

func (e *ContractError) Unwrap() error {
	return e.Wrapped
}
