// Package metrics counts the work an algorithm does by observing its trace
// step by step. Counters read only the highlight set and colour tags.
package metrics

import "github.com/san-kum/leaflet/internal/trace"

type Metric interface {
	Name() string
	Observe(step trace.Step)
	Value() float64
	Reset()
}

// Comparisons counts steps that inspect a pair of positions.
type Comparisons struct {
	count int
}

func NewComparisons() *Comparisons { return &Comparisons{} }

func (c *Comparisons) Name() string { return "comparisons" }

func (c *Comparisons) Observe(step trace.Step) {
	if len(step.Highlighted) == 2 {
		c.count++
	}
}

func (c *Comparisons) Value() float64 { return float64(c.count) }

func (c *Comparisons) Reset() { c.count = 0 }

// Swaps counts steps that show at least one element moved.
type Swaps struct {
	count int
}

func NewSwaps() *Swaps { return &Swaps{} }

func (s *Swaps) Name() string { return "swaps" }

func (s *Swaps) Observe(step trace.Step) {
	for _, c := range step.Colors {
		if c == trace.ColorSwapped {
			s.count++
			return
		}
	}
}

func (s *Swaps) Value() float64 { return float64(s.count) }

func (s *Swaps) Reset() { s.count = 0 }

// Scans counts single-position inspections. A step announcing a match is
// the outcome of the previous inspection, not a new one.
type Scans struct {
	count int
}

func NewScans() *Scans { return &Scans{} }

func (s *Scans) Name() string { return "scans" }

func (s *Scans) Observe(step trace.Step) {
	if len(step.Highlighted) != 1 {
		return
	}
	if step.Colors[step.Highlighted[0]] == trace.ColorFound {
		return
	}
	s.count++
}

func (s *Scans) Value() float64 { return float64(s.count) }

func (s *Scans) Reset() { s.count = 0 }

// Default returns a fresh set of every counter.
func Default() []Metric {
	return []Metric{NewComparisons(), NewSwaps(), NewScans()}
}

// Summarize resets each metric, feeds it every step of tr and returns the
// values keyed by metric name. With no metrics given it uses Default.
func Summarize(tr trace.Trace, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Default()
	}
	for _, m := range ms {
		m.Reset()
	}
	for _, st := range tr.Steps {
		for _, m := range ms {
			m.Observe(st)
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
