package config

import (
	"sort"

	"github.com/san-kum/leaflet/internal/trace"
)

// Family groups algorithms that share input presets.
type Family string

const (
	FamilySort   Family = "sort"
	FamilySearch Family = "search"
	FamilyGraph  Family = "graph"
)

func FamilyOf(a trace.Algorithm) Family {
	switch a {
	case trace.BinarySearch, trace.LinearSearch:
		return FamilySearch
	case trace.DFS, trace.BFS:
		return FamilyGraph
	default:
		return FamilySort
	}
}

var Presets = map[Family]map[string][]float64{
	FamilySort: {
		"classic":    {64, 34, 25, 12, 22, 11, 90},
		"sorted":     {1, 2, 3, 4, 5, 6, 7, 8},
		"reversed":   {8, 7, 6, 5, 4, 3, 2, 1},
		"duplicates": {5, 3, 5, 1, 3, 5, 1},
	},
	FamilySearch: {
		"classic":    {5, 2, 8, 1, 9},
		"sorted":     {2, 5, 8, 12, 16, 23, 38, 56, 72, 91},
		"reversed":   {91, 72, 56, 38, 23, 16, 12, 8, 5, 2},
		"duplicates": {4, 7, 4, 7, 4, 7},
	},
	FamilyGraph: {
		"classic":  {1, 2, 3, 4, 5, 6, 7},
		"sorted":   {1, 2, 3, 4, 5, 6, 7, 8},
		"reversed": {8, 7, 6, 5, 4, 3, 2, 1},
	},
}

// GetPreset returns a copy of the named input for a's family, or nil.
func GetPreset(a trace.Algorithm, name string) []float64 {
	vals, ok := Presets[FamilyOf(a)][name]
	if !ok {
		return nil
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	return out
}

func ListPresets(a trace.Algorithm) []string {
	familyPresets, ok := Presets[FamilyOf(a)]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
