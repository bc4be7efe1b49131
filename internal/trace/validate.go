package trace

import (
	"fmt"
	"math"
)

// Validate checks the invariants every trace must hold: finite values, a
// constant value count across steps and in-range highlight and colour
// positions.
func Validate(t *Trace) error {
	if t.Len() == 0 {
		return nil
	}
	n := len(t.Steps[0].Values)
	for i, st := range t.Steps {
		if len(st.Values) != n {
			return &StepError{Index: i, Wrapped: fmt.Errorf("%w: want %d, got %d", ErrCardinality, n, len(st.Values))}
		}
		if j, ok := firstNonFinite(st.Values); ok {
			return &StepError{Index: i, Wrapped: fmt.Errorf("%w: position %d is %v", ErrNotFinite, j, st.Values[j])}
		}
		for _, h := range st.Highlighted {
			if h < 0 || h >= n {
				return &StepError{Index: i, Wrapped: fmt.Errorf("%w: highlight %d", ErrIndexRange, h)}
			}
		}
		for _, k := range sortedKeys(st.Colors) {
			if k < 0 || k >= n {
				return &StepError{Index: i, Wrapped: fmt.Errorf("%w: colour %d", ErrIndexRange, k)}
			}
		}
	}
	return nil
}

// CheckFinite reports the first NaN or infinite value in vals.
func CheckFinite(vals []float64) error {
	if j, ok := firstNonFinite(vals); ok {
		return fmt.Errorf("%w: position %d is %v", ErrNotFinite, j, vals[j])
	}
	return nil
}

func firstNonFinite(vals []float64) (int, bool) {
	for j, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return j, true
		}
	}
	return -1, false
}
