package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/leaflet/internal/trace"
)

type ExportData struct {
	Algorithm   string       `json:"algorithm"`
	Input       []float64    `json:"input"`
	Placeholder bool         `json:"placeholder"`
	Steps       int          `json:"steps"`
	Trace       []trace.Step `json:"trace"`
}

func NewExportData(tr trace.Trace) ExportData {
	return ExportData{
		Algorithm:   tr.Algorithm.String(),
		Input:       tr.Input,
		Placeholder: tr.Placeholder,
		Steps:       tr.Len(),
		Trace:       tr.Steps,
	}
}

// ExportJSON writes the full trace as indented JSON.
func ExportJSON(w io.Writer, tr trace.Trace) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(tr))
}

// ExportCSV writes one row per step: index, kind, highlighted positions,
// narration and one column per value.
func ExportCSV(w io.Writer, tr trace.Trace) error {
	cw := csv.NewWriter(w)

	width := 0
	if tr.Len() > 0 {
		width = len(tr.Steps[0].Values)
	}

	header := []string{"step", "kind", "highlighted", "narration"}
	for i := 0; i < width; i++ {
		header = append(header, fmt.Sprintf("v%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, st := range tr.Steps {
		hl := make([]string, len(st.Highlighted))
		for j, h := range st.Highlighted {
			hl[j] = strconv.Itoa(h)
		}

		row := []string{strconv.Itoa(i), string(st.Kind), strings.Join(hl, ";"), st.Narration}
		for _, v := range st.Values {
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
