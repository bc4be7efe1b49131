package trace

func bubbleSort(arr []float64) []Step {
	r := newRecorder(arr)
	n := len(arr)
	r.emit(nil, nil, "Initial array - Bubble Sort will compare adjacent elements")

	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			r.emit(idx(j, j+1), nil, "Comparing positions %d and %d: %s vs %s",
				j, j+1, FormatValue(arr[j]), FormatValue(arr[j+1]))

			if arr[j] > arr[j+1] {
				r.swap(j, j+1)
				colors := map[int]Color{j: ColorSwapped, j + 1: ColorSwapped}
				tagRange(colors, n-i, n, ColorSettled)
				r.emit(nil, colors, "Swapped %s and %s - array is now: %s",
					FormatValue(arr[j+1]), FormatValue(arr[j]), FormatValues(arr))
			}
		}
	}
	return r.steps
}

func selectionSort(arr []float64) []Step {
	r := newRecorder(arr)
	n := len(arr)
	r.emit(nil, nil, "Initial array - Selection Sort will move the smallest remaining element to the front")

	for i := 0; i < n-1; i++ {
		minIdx := i
		r.emit(idx(i), tagRange(nil, 0, i, ColorSettled),
			"Pass %d: assuming position %d (%s) holds the minimum", i, i, FormatValue(arr[i]))

		for j := i + 1; j < n; j++ {
			r.emit(idx(minIdx, j), tagRange(nil, 0, i, ColorSettled),
				"Comparing positions %d and %d: %s vs %s", minIdx, j, FormatValue(arr[minIdx]), FormatValue(arr[j]))
			if arr[j] < arr[minIdx] {
				minIdx = j
			}
		}

		if minIdx != i {
			r.swap(i, minIdx)
			colors := map[int]Color{i: ColorSwapped, minIdx: ColorSwapped}
			tagRange(colors, 0, i, ColorSettled)
			r.emit(nil, colors, "Swapped %s and %s - array is now: %s",
				FormatValue(arr[minIdx]), FormatValue(arr[i]), FormatValues(arr))
		} else {
			r.emit(nil, tagRange(nil, 0, i+1, ColorSettled),
				"Position %d already holds the minimum %s", i, FormatValue(arr[i]))
		}
	}

	r.emit(nil, tagRange(nil, 0, n, ColorSettled), "Selection Sort complete: %s", FormatValues(arr))
	return r.steps
}

// insertionSort moves each key left by adjacent swaps so every step keeps
// the same multiset of values.
func insertionSort(arr []float64) []Step {
	r := newRecorder(arr)
	n := len(arr)
	r.emit(nil, nil, "Initial array - Insertion Sort will grow a sorted prefix one key at a time")

	for i := 1; i < n; i++ {
		key := arr[i]
		r.emit(idx(i), tagRange(nil, 0, i, ColorSettled), "Picking key %s at position %d", FormatValue(key), i)

		j := i
		for j > 0 {
			r.emit(idx(j-1, j), nil, "Comparing positions %d and %d: %s vs %s",
				j-1, j, FormatValue(arr[j-1]), FormatValue(arr[j]))
			if arr[j-1] <= arr[j] {
				break
			}
			r.swap(j-1, j)
			r.emit(nil, map[int]Color{j - 1: ColorSwapped, j: ColorSwapped},
				"Shifted %s right - array is now: %s", FormatValue(arr[j]), FormatValues(arr))
			j--
		}

		r.emit(nil, tagRange(map[int]Color{j: ColorFound}, 0, i+1, ColorSettled),
			"Inserted %s at position %d", FormatValue(key), j)
	}
	return r.steps
}
