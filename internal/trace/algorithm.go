package trace

import (
	"fmt"
	"strings"
)

// Algorithm enumerates the algorithms offered for visualization.
type Algorithm int

const (
	BubbleSort Algorithm = iota + 1
	SelectionSort
	InsertionSort
	MergeSort
	QuickSort
	BinarySearch
	LinearSearch
	DFS
	BFS
)

var algorithmNames = map[Algorithm]string{
	BubbleSort:    "Bubble Sort",
	SelectionSort: "Selection Sort",
	InsertionSort: "Insertion Sort",
	MergeSort:     "Merge Sort",
	QuickSort:     "Quick Sort",
	BinarySearch:  "Binary Search",
	LinearSearch:  "Linear Search",
	DFS:           "DFS",
	BFS:           "BFS",
}

// Algorithms returns every algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{
		BubbleSort, SelectionSort, InsertionSort, MergeSort,
		QuickSort, BinarySearch, LinearSearch, DFS, BFS,
	}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Slug is the lower-case, dash separated form used on the command line.
func (a Algorithm) Slug() string {
	return strings.ReplaceAll(strings.ToLower(a.String()), " ", "-")
}

// Implemented reports whether the algorithm has a real step generator.
func (a Algorithm) Implemented() bool {
	_, ok := generators[a]
	return ok
}

// ParseAlgorithm accepts display names ("Bubble Sort") and slugs ("bubble",
// "bubble-sort", "bubble_sort"), ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := normalize(name)
	if key == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownAlgorithm)
	}
	for _, a := range Algorithms() {
		full := normalize(a.String())
		if key == full || key+"sort" == full || key+"search" == full {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if _, ok := algorithmNames[a]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(b []byte) error {
	parsed, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
