package trace

import (
	"sort"
	"strconv"
	"strings"
)

// Kind tags the data structure a step depicts.
type Kind string

const (
	KindArray Kind = "array-state"
	KindTree  Kind = "tree-state"
)

// Color is a semantic colour tag; renderers map it to a real colour.
type Color string

const (
	ColorDefault  Color = "default"
	ColorCompared Color = "compared"
	ColorSwapped  Color = "swapped"
	ColorSettled  Color = "settled"
	ColorFound    Color = "found"
)

// Step is one frame of a trace. Steps are never mutated after generation.
type Step struct {
	Kind        Kind          `json:"kind"`
	Values      []float64     `json:"values"`
	Highlighted []int         `json:"highlighted,omitempty"`
	Colors      map[int]Color `json:"colors,omitempty"`
	Narration   string        `json:"narration"`
}

// IsHighlighted reports whether position i is under inspection.
func (s Step) IsHighlighted(i int) bool {
	for _, h := range s.Highlighted {
		if h == i {
			return true
		}
	}
	return false
}

// ColorAt resolves the tag for position i: explicit colour first, then the
// highlight set, then default.
func (s Step) ColorAt(i int) Color {
	if c, ok := s.Colors[i]; ok {
		return c
	}
	if s.IsHighlighted(i) {
		return ColorCompared
	}
	return ColorDefault
}

// Trace is the full step sequence for one (algorithm, input) pair.
type Trace struct {
	Algorithm   Algorithm `json:"algorithm"`
	Input       []float64 `json:"input"`
	Steps       []Step    `json:"steps"`
	Placeholder bool      `json:"placeholder,omitempty"`
}

func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Steps)
}

func (t *Trace) At(i int) Step { return t.Steps[i] }

// Final returns the last step, or false for an empty trace.
func (t *Trace) Final() (Step, bool) {
	if t.Len() == 0 {
		return Step{}, false
	}
	return t.Steps[len(t.Steps)-1], true
}

// FormatValue renders a number the way narrations show it: integers without
// a fractional part.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatValues renders a sequence as "[a, b, c]".
func FormatValues(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = FormatValue(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func cloneValues(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}

func sortedKeys(m map[int]Color) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func itoa(i int) string { return strconv.Itoa(i) }
