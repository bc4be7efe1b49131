package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/leaflet/internal/export"
	"github.com/san-kum/leaflet/internal/storage"
	"github.com/san-kum/leaflet/internal/trace"
	"github.com/san-kum/leaflet/internal/viz"
)

// withOutput runs write against --out, or stdout when it is unset.
func withOutput(cmd *cobra.Command, write func(io.Writer) error) error {
	if outFile == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func buildTrace(cmd *cobra.Command, args []string) (trace.Trace, *request, error) {
	req, err := resolveRequest(cmd, args)
	if err != nil {
		return trace.Trace{}, nil, err
	}
	tr := trace.Generate(req.algorithm, req.input)
	return tr, req, trace.Validate(&tr)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	tr, _, err := buildTrace(cmd, args)
	if err != nil {
		return err
	}
	return withOutput(cmd, func(w io.Writer) error { return storage.ExportJSON(w, tr) })
}

func exportCSV(cmd *cobra.Command, args []string) error {
	tr, _, err := buildTrace(cmd, args)
	if err != nil {
		return err
	}
	return withOutput(cmd, func(w io.Writer) error { return storage.ExportCSV(w, tr) })
}

func exportSVG(cmd *cobra.Command, args []string) error {
	tr, req, err := buildTrace(cmd, args)
	if err != nil {
		return err
	}

	i := stepIndex
	if i < 0 {
		i = tr.Len() - 1
	}
	if i >= tr.Len() {
		return fmt.Errorf("step %d out of range: trace has %d steps", i, tr.Len())
	}

	svg := export.StepToSVGTheme(tr.At(i), svgScale, viz.GetTheme(req.cfg.Theme))
	return withOutput(cmd, func(w io.Writer) error {
		_, err := io.WriteString(w, svg+"\n")
		return err
	})
}
