// Package input turns user text into an input sequence for the trace
// generator. Parsing and random fallback happen here, at the caller
// boundary, so generation itself stays deterministic.
package input

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCount = 8
	DefaultMin   = 1
	DefaultMax   = 99
)

var (
	ErrEmpty       = errors.New("input: no values given")
	ErrUnparseable = errors.New("input: not a list of numbers")
	ErrRange       = errors.New("input: invalid random range")
)

// Parse accepts a bracketed literal ("[5, 2, 8]") or a delimited list
// ("5, 2, 8", "5 2 8", "5;2;8").
func Parse(text string) ([]float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmpty
	}

	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		return parseLiteral(text)
	}
	return parseDelimited(text)
}

func parseLiteral(text string) ([]float64, error) {
	var vals []float64
	if err := yaml.Unmarshal([]byte(text), &vals); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if len(vals) == 0 {
		return nil, ErrEmpty
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %v is not finite", ErrUnparseable, v)
		}
	}
	return vals, nil
}

func parseDelimited(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, ErrEmpty
	}

	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q", ErrUnparseable, f)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// Generator produces random inputs when the user gave none.
type Generator struct {
	Rand  *rand.Rand
	Count int
	Min   int
	Max   int
}

// NewGenerator returns a generator with the default size and range.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		Rand:  rand.New(rand.NewSource(seed)),
		Count: DefaultCount,
		Min:   DefaultMin,
		Max:   DefaultMax,
	}
}

// Random returns Count integers drawn uniformly from [Min, Max].
func (g *Generator) Random() ([]float64, error) {
	if g.Count < 0 || g.Max < g.Min {
		return nil, fmt.Errorf("%w: count=%d min=%d max=%d", ErrRange, g.Count, g.Min, g.Max)
	}
	vals := make([]float64, g.Count)
	span := g.Max - g.Min + 1
	for i := range vals {
		vals[i] = float64(g.Min + g.Rand.Intn(span))
	}
	return vals, nil
}

// ParseOrRandom parses text and falls back to a random sequence when text is
// empty or unparseable. random reports whether the fallback was used.
func (g *Generator) ParseOrRandom(text string) (vals []float64, random bool, err error) {
	vals, perr := Parse(text)
	if perr == nil {
		return vals, false, nil
	}
	vals, err = g.Random()
	if err != nil {
		return nil, true, err
	}
	return vals, true, nil
}
