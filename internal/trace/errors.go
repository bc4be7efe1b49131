package trace

import "errors"

var (
	// ErrUnknownAlgorithm indicates a name that maps to no Algorithm.
	ErrUnknownAlgorithm = errors.New("trace: unknown algorithm")

	// ErrCardinality indicates a step whose value count differs from the first step.
	ErrCardinality = errors.New("trace: value count changed between steps")

	// ErrIndexRange indicates a highlighted index or colour key outside the values.
	ErrIndexRange = errors.New("trace: index out of range")

	// ErrNotFinite indicates a NaN or infinite value, which has no order.
	ErrNotFinite = errors.New("trace: value is not finite")
)

// StepError wraps a validation failure with the offending step.
type StepError struct {
	Index   int
	Wrapped error
}

func (e *StepError) Error() string {
	return "step " + itoa(e.Index) + ": " + e.Wrapped.Error()
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
