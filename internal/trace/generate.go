package trace

import "fmt"

type generator func(input []float64) []Step

// generators holds every algorithm with a real trace. Adding an algorithm is
// one entry here plus its generator function.
var generators = map[Algorithm]generator{
	BubbleSort:    bubbleSort,
	SelectionSort: selectionSort,
	InsertionSort: insertionSort,
	LinearSearch:  linearSearch,
}

// Generate produces the trace for running a over input. It never fails: an
// empty input or an algorithm without a generator yields a single-step
// trace whose narration explains why.
func Generate(a Algorithm, input []float64) Trace {
	tr := Trace{Algorithm: a, Input: cloneValues(input)}

	if len(input) == 0 {
		tr.Steps = []Step{{
			Kind:      KindArray,
			Values:    []float64{},
			Narration: fmt.Sprintf("No data provided - %s has nothing to visualize", a),
		}}
		return tr
	}

	gen, ok := generators[a]
	if !ok {
		tr.Placeholder = true
		tr.Steps = []Step{placeholder(a, input)}
		return tr
	}

	tr.Steps = gen(cloneValues(input))
	return tr
}

func placeholder(a Algorithm, input []float64) Step {
	kind := KindArray
	if a == DFS || a == BFS {
		kind = KindTree
	}
	return Step{
		Kind:      kind,
		Values:    cloneValues(input),
		Narration: fmt.Sprintf("%s visualization - simplified placeholder", a),
	}
}

// recorder accumulates steps over a working array, snapshotting it each time.
type recorder struct {
	arr   []float64
	steps []Step
}

func newRecorder(arr []float64) *recorder {
	return &recorder{arr: arr, steps: make([]Step, 0, len(arr)*len(arr)/2+2)}
}

func (r *recorder) emit(highlight []int, colors map[int]Color, format string, args ...any) {
	r.steps = append(r.steps, Step{
		Kind:        KindArray,
		Values:      cloneValues(r.arr),
		Highlighted: highlight,
		Colors:      colors,
		Narration:   fmt.Sprintf(format, args...),
	})
}

func (r *recorder) swap(i, j int) {
	r.arr[i], r.arr[j] = r.arr[j], r.arr[i]
}

func idx(i ...int) []int { return i }

// tagRange colours positions [from, to) with c on top of base.
func tagRange(base map[int]Color, from, to int, c Color) map[int]Color {
	if base == nil {
		base = make(map[int]Color)
	}
	for k := from; k < to; k++ {
		if _, set := base[k]; !set {
			base[k] = c
		}
	}
	return base
}
