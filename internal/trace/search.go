package trace

// linearSearch looks for the middle element, so the target is always present.
func linearSearch(arr []float64) []Step {
	return linearScan(arr, arr[len(arr)/2])
}

// LinearSearchFor traces a linear scan for an arbitrary target, including
// the "not found" ending when target is absent.
func LinearSearchFor(input []float64, target float64) Trace {
	tr := Trace{Algorithm: LinearSearch, Input: cloneValues(input)}
	if len(input) == 0 {
		return Generate(LinearSearch, input)
	}
	tr.Steps = linearScan(cloneValues(input), target)
	return tr
}

func linearScan(arr []float64, target float64) []Step {
	r := newRecorder(arr)
	t := FormatValue(target)
	r.emit(nil, nil, "Linear Search: Looking for %s in the array", t)

	for i, v := range arr {
		op := "!="
		if v == target {
			op = "=="
		}
		r.emit(idx(i), nil, "Checking position %d: %s %s %s", i, FormatValue(v), op, t)

		if v == target {
			r.emit(idx(i), map[int]Color{i: ColorFound}, "Found %s at position %d! Search complete.", t, i)
			return r.steps
		}
	}

	r.emit(nil, nil, "%s not found after checking %d positions. Search complete.", t, len(arr))
	return r.steps
}
