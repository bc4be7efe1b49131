// Package trace produces visualization traces for teaching algorithms.
//
// A trace is the complete, precomputed sequence of steps describing one
// algorithm run over one input:
//
//   - [Step]: one frame (values, highlighted positions, colour tags, narration)
//   - [Trace]: the ordered, finite, restartable sequence of steps
//   - [Algorithm]: closed enumeration of the supported algorithms
//   - [Generate]: dispatches an algorithm to its step generator
//
// # Example
//
//	tr := trace.Generate(trace.BubbleSort, []float64{5, 2, 8, 1})
//	for _, st := range tr.Steps {
//		fmt.Println(st.Narration)
//	}
//
// Generation is pure and deterministic. Algorithms without a real generator
// and empty inputs produce a single-step trace instead of an error.
package trace
