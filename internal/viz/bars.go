package viz

import (
	"math"
	"strings"

	"github.com/san-kum/leaflet/internal/trace"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws one block rune per value, scaled to the largest
// magnitude in vals.
func Sparkline(vals []float64) string {
	maxAbs := maxMagnitude(vals)
	var b strings.Builder
	for _, v := range vals {
		level := 0
		if maxAbs > 0 {
			level = int(math.Round(math.Abs(v) / maxAbs * float64(len(sparkRunes)-1)))
		}
		b.WriteRune(sparkRunes[level])
	}
	return b.String()
}

// MarkedValues lists the values with each position's tag as a delimiter:
// [v] compared, *v* swapped, (v) found, v. settled.
func MarkedValues(step trace.Step) string {
	parts := make([]string, len(step.Values))
	for i, v := range step.Values {
		s := trace.FormatValue(v)
		switch step.ColorAt(i) {
		case trace.ColorCompared:
			s = "[" + s + "]"
		case trace.ColorSwapped:
			s = "*" + s + "*"
		case trace.ColorFound:
			s = "(" + s + ")"
		case trace.ColorSettled:
			s += "."
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}

// TreeLevels splits vals into the rows of a complete binary tree laid out
// in level order.
func TreeLevels(vals []float64) [][]float64 {
	var levels [][]float64
	for start, width := 0, 1; start < len(vals); start, width = start+width, width*2 {
		end := start + width
		if end > len(vals) {
			end = len(vals)
		}
		levels = append(levels, vals[start:end])
	}
	return levels
}

func maxMagnitude(vals []float64) float64 {
	m := 0.0
	for _, v := range vals {
		m = math.Max(m, math.Abs(v))
	}
	return m
}
