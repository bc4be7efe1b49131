package trace

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBubbleSortScenario(t *testing.T) {
	tr := Generate(BubbleSort, []float64{5, 2, 8, 1})

	final, ok := tr.Final()
	if !ok {
		t.Fatal("expected steps")
	}
	want := []float64{1, 2, 5, 8}
	if diff := cmp.Diff(want, final.Values); diff != "" {
		t.Errorf("final values mismatch (-want +got):\n%s", diff)
	}

	// 1 initial + 6 comparisons + 4 swaps
	if tr.Len() != 11 {
		t.Errorf("expected 11 steps, got %d", tr.Len())
	}
	if !strings.Contains(tr.Steps[1].Narration, "5 vs 2") {
		t.Errorf("unexpected comparison narration: %q", tr.Steps[1].Narration)
	}
}

func TestBubbleSortStepShape(t *testing.T) {
	tr := Generate(BubbleSort, []float64{3, 1, 2})

	if len(tr.Steps[0].Highlighted) != 0 {
		t.Error("initial step should not highlight")
	}
	for i, st := range tr.Steps[1:] {
		switch {
		case len(st.Highlighted) == 2:
			if st.Highlighted[1] != st.Highlighted[0]+1 {
				t.Errorf("step %d compares non-adjacent positions %v", i+1, st.Highlighted)
			}
		case st.Colors != nil:
			swapped := 0
			for _, c := range st.Colors {
				if c == ColorSwapped {
					swapped++
				}
			}
			if swapped != 2 {
				t.Errorf("step %d: expected 2 swapped positions, got %d", i+1, swapped)
			}
		default:
			t.Errorf("step %d is neither comparison nor swap: %+v", i+1, st)
		}
	}
}

func TestBubbleSortNoSwapOnSortedInput(t *testing.T) {
	tr := Generate(BubbleSort, []float64{1, 2, 3, 4})
	// n(n-1)/2 comparisons and no swap steps
	if tr.Len() != 1+6 {
		t.Errorf("expected 7 steps, got %d", tr.Len())
	}
}

func TestLinearSearchScenario(t *testing.T) {
	tr := Generate(LinearSearch, []float64{3, 7, 2, 9})

	last, _ := tr.Final()
	if diff := cmp.Diff([]int{2}, last.Highlighted); diff != "" {
		t.Errorf("final highlight mismatch (-want +got):\n%s", diff)
	}
	if last.Colors[2] != ColorFound {
		t.Errorf("expected position 2 coloured found, got %q", last.Colors[2])
	}
	if !strings.Contains(last.Narration, "Found 2 at position 2") {
		t.Errorf("unexpected narration: %q", last.Narration)
	}
	if !strings.Contains(tr.Steps[0].Narration, "Looking for 2") {
		t.Errorf("initial step should announce target: %q", tr.Steps[0].Narration)
	}
	// initial + 3 checks + found
	if tr.Len() != 5 {
		t.Errorf("expected 5 steps, got %d", tr.Len())
	}
}

func TestLinearSearchNotFound(t *testing.T) {
	tr := LinearSearchFor([]float64{3, 7, 2, 9}, 42)

	if tr.Len() != 1+4+1 {
		t.Fatalf("expected 6 steps, got %d", tr.Len())
	}
	last, _ := tr.Final()
	if !strings.Contains(last.Narration, "not found") {
		t.Errorf("expected not-found narration, got %q", last.Narration)
	}
	if len(last.Highlighted) != 0 {
		t.Errorf("not-found step should not highlight, got %v", last.Highlighted)
	}
}

func TestPlaceholderScenario(t *testing.T) {
	input := []float64{4, 4, 4}
	tr := Generate(MergeSort, input)

	if tr.Len() != 1 {
		t.Fatalf("expected a single step, got %d", tr.Len())
	}
	if !tr.Placeholder {
		t.Error("expected placeholder flag")
	}
	if diff := cmp.Diff(input, tr.Steps[0].Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(tr.Steps[0].Narration, "placeholder") {
		t.Errorf("narration should mark placeholder: %q", tr.Steps[0].Narration)
	}
}

func TestPlaceholderKinds(t *testing.T) {
	tests := []struct {
		algo Algorithm
		kind Kind
	}{
		{MergeSort, KindArray},
		{QuickSort, KindArray},
		{BinarySearch, KindArray},
		{DFS, KindTree},
		{BFS, KindTree},
	}

	for _, tt := range tests {
		t.Run(tt.algo.String(), func(t *testing.T) {
			tr := Generate(tt.algo, []float64{1, 2, 3})
			if tr.Steps[0].Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, tr.Steps[0].Kind)
			}
			if tt.algo.Implemented() {
				t.Error("placeholder algorithm reports Implemented")
			}
		})
	}
}

func TestEmptyInput(t *testing.T) {
	for _, a := range Algorithms() {
		tr := Generate(a, nil)
		if tr.Len() != 1 {
			t.Errorf("%s: expected 1 step, got %d", a, tr.Len())
			continue
		}
		st := tr.Steps[0]
		if len(st.Values) != 0 {
			t.Errorf("%s: expected empty values", a)
		}
		if !strings.Contains(st.Narration, "No data") {
			t.Errorf("%s: unexpected narration %q", a, st.Narration)
		}
		if tr.Placeholder {
			t.Errorf("%s: empty input is not a placeholder", a)
		}
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	input := []float64{9, 3, 7, 1}
	orig := append([]float64(nil), input...)

	for _, a := range Algorithms() {
		tr := Generate(a, input)
		if diff := cmp.Diff(orig, input); diff != "" {
			t.Fatalf("%s mutated input (-want +got):\n%s", a, diff)
		}
		tr.Input[0] = -1
		if input[0] == -1 {
			t.Fatalf("%s: trace aliases the caller's slice", a)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	input := []float64{6, 1, 6, 3, 9, 0}
	for _, a := range Algorithms() {
		first := Generate(a, input)
		second := Generate(a, input)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s is not deterministic (-first +second):\n%s", a, diff)
		}
	}
}

func TestSortsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sorts := []Algorithm{BubbleSort, SelectionSort, InsertionSort}

	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(12)
		input := make([]float64, n)
		for i := range input {
			input[i] = float64(rng.Intn(20) - 5)
		}

		for _, a := range sorts {
			tr := Generate(a, input)
			if err := Validate(&tr); err != nil {
				t.Fatalf("%s %v: %v", a, input, err)
			}

			first, final := tr.Steps[0].Values, tr.Steps[tr.Len()-1].Values
			if !sort.Float64sAreSorted(final) {
				t.Errorf("%s %v: final step not sorted: %v", a, input, final)
			}
			if diff := cmp.Diff(multiset(first), multiset(final)); diff != "" {
				t.Errorf("%s %v: multiset changed (-first +final):\n%s", a, input, diff)
			}
			for i, st := range tr.Steps {
				if diff := cmp.Diff(multiset(first), multiset(st.Values)); diff != "" {
					t.Fatalf("%s step %d: multiset changed:\n%s", a, i, diff)
				}
			}
		}
	}
}

func TestBubbleSortStepBound(t *testing.T) {
	for n := 1; n <= 10; n++ {
		input := make([]float64, n)
		for i := range input {
			input[i] = float64(n - i)
		}
		tr := Generate(BubbleSort, input)
		comparisons := n * (n - 1) / 2
		// reversed input swaps on every comparison
		if want := 1 + 2*comparisons; tr.Len() != want {
			t.Errorf("n=%d: expected %d steps, got %d", n, want, tr.Len())
		}
	}
}

func TestValidate(t *testing.T) {
	good := Generate(BubbleSort, []float64{2, 1})
	if err := Validate(&good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := Trace{Steps: []Step{
		{Values: []float64{1, 2}},
		{Values: []float64{1}},
	}}
	err := Validate(&bad)
	if !errors.Is(err, ErrCardinality) {
		t.Errorf("expected ErrCardinality, got %v", err)
	}
	var se *StepError
	if !errors.As(err, &se) || se.Index != 1 {
		t.Errorf("expected StepError at index 1, got %v", err)
	}

	bad = Trace{Steps: []Step{{Values: []float64{1, 2}, Highlighted: []int{2}}}}
	if err := Validate(&bad); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}

	bad = Trace{Steps: []Step{{Values: []float64{1}, Colors: map[int]Color{-1: ColorFound}}}}
	if err := Validate(&bad); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange for colour key, got %v", err)
	}

	bad = Trace{Steps: []Step{{Values: []float64{1, 2}}, {Values: []float64{math.NaN(), 2}}}}
	err = Validate(&bad)
	if !errors.Is(err, ErrNotFinite) || !errors.As(err, &se) || se.Index != 1 {
		t.Errorf("expected ErrNotFinite at step 1, got %v", err)
	}
}

func TestCheckFinite(t *testing.T) {
	if err := CheckFinite([]float64{1, -2.5, 0}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckFinite(nil); err != nil {
		t.Errorf("unexpected error for empty input: %v", err)
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := CheckFinite([]float64{1, v}); !errors.Is(err, ErrNotFinite) {
			t.Errorf("%v: expected ErrNotFinite, got %v", v, err)
		}
	}
}

func multiset(vals []float64) map[float64]int {
	m := make(map[float64]int)
	for _, v := range vals {
		m[v]++
	}
	return m
}
