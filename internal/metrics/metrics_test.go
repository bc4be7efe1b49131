package metrics

import (
	"testing"

	"github.com/san-kum/leaflet/internal/trace"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		algorithm trace.Algorithm
		input     []float64
		want      map[string]float64
	}{
		{
			name:      "bubble reversed",
			algorithm: trace.BubbleSort,
			input:     []float64{3, 2, 1},
			want:      map[string]float64{"comparisons": 3, "swaps": 3, "scans": 0},
		},
		{
			name:      "bubble sorted",
			algorithm: trace.BubbleSort,
			input:     []float64{1, 2, 3, 4},
			want:      map[string]float64{"comparisons": 6, "swaps": 0, "scans": 0},
		},
		{
			name:      "linear search middle",
			algorithm: trace.LinearSearch,
			input:     []float64{3, 7, 2, 9},
			want:      map[string]float64{"comparisons": 0, "swaps": 0, "scans": 3},
		},
		{
			name:      "placeholder",
			algorithm: trace.MergeSort,
			input:     []float64{4, 1},
			want:      map[string]float64{"comparisons": 0, "swaps": 0, "scans": 0},
		},
		{
			name:      "empty",
			algorithm: trace.BubbleSort,
			input:     nil,
			want:      map[string]float64{"comparisons": 0, "swaps": 0, "scans": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(trace.Generate(tt.algorithm, tt.input))
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestSummarizeResetsMetrics(t *testing.T) {
	c := NewComparisons()
	tr := trace.Generate(trace.BubbleSort, []float64{2, 1})

	first := Summarize(tr, c)
	second := Summarize(tr, c)

	if first["comparisons"] != 1 || second["comparisons"] != 1 {
		t.Errorf("comparisons = %v then %v, want 1 both times", first["comparisons"], second["comparisons"])
	}
}

func TestScansNotFound(t *testing.T) {
	s := NewScans()
	tr := trace.LinearSearchFor([]float64{1, 2, 3}, 42)
	for _, st := range tr.Steps {
		s.Observe(st)
	}
	if s.Value() != 3 {
		t.Errorf("scans = %v, want 3", s.Value())
	}
}
