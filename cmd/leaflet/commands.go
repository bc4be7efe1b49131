package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/leaflet/internal/automation"
	"github.com/san-kum/leaflet/internal/config"
	"github.com/san-kum/leaflet/internal/metrics"
	"github.com/san-kum/leaflet/internal/playback"
	"github.com/san-kum/leaflet/internal/storage"
	"github.com/san-kum/leaflet/internal/trace"
	"github.com/san-kum/leaflet/internal/viz"
)

func runText(cmd *cobra.Command, args []string) error {
	req, err := resolveRequest(cmd, args)
	if err != nil {
		return err
	}
	tr, err := generate(cmd, req)
	if err != nil {
		return err
	}
	return playText(cmd, tr, req.cfg)
}

// playText renders tr to stdout, either all at once or on a timer.
func playText(cmd *cobra.Command, tr trace.Trace, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	sink := viz.NewTextSink(out, tr.Len())
	ctrl := playback.NewController(sink)
	if err := ctrl.SetSpeed(cfg.SpeedMs); err != nil {
		return err
	}
	ctrl.Load(tr)

	if auto {
		ctx, cancel := signalContext()
		defer cancel()
		ctrl.Play()
		if err := playback.NewTicker(ctrl).Run(ctx); err != nil {
			return err
		}
	} else {
		for ctrl.Status() != playback.Finished && tr.Len() > 0 {
			ctrl.Step()
		}
	}
	if err := sink.Err(); err != nil {
		return err
	}

	printSummary(out, tr)
	return nil
}

func printSummary(out io.Writer, tr trace.Trace) {
	final, ok := tr.Final()
	if !ok {
		return
	}

	fmt.Fprintf(out, "\n%s: %d steps", tr.Algorithm, tr.Len())
	if tr.Placeholder {
		fmt.Fprint(out, " (placeholder)")
	}
	fmt.Fprintln(out)

	summary := metrics.Summarize(tr)
	for _, name := range []string{"comparisons", "swaps", "scans"} {
		if v := summary[name]; v > 0 {
			fmt.Fprintf(out, "  %s: %.0f\n", name, v)
		}
	}

	if len(final.Values) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(final.Values,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("final values"),
		))
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	req, err := resolveRequest(cmd, args)
	if err != nil {
		return err
	}
	tr, err := generate(cmd, req)
	if err != nil {
		return err
	}
	return playInteractive(tr, req.cfg)
}

func playInteractive(tr trace.Trace, cfg *config.Config) error {
	ctrl := playback.NewController(nil)
	if err := ctrl.SetSpeed(cfg.SpeedMs); err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewPlayer(ctrl, tr, cfg.Theme))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSLUG\tTRACE\tPRESETS")

	for _, a := range trace.Algorithms() {
		kind := "full"
		if !a.Implemented() {
			kind = "placeholder"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a, a.Slug(), kind, strings.Join(config.ListPresets(a), ", "))
	}

	return w.Flush()
}

func showHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	hist := storage.NewHistory(storage.New(cfg.DataDir, logger))
	entries := hist.All()
	offset := 0
	if !showAll && len(entries) > storage.RecentLimit {
		offset = len(entries) - storage.RecentLimit
	}
	entries = entries[offset:]

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no history yet")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tALGORITHM\tTIME\tDATA")

	for i, e := range entries {
		id := e.ID
		if len(id) > 8 {
			id = id[:8]
		}
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", offset+i+1, id, e.Algorithm, e.Timestamp, trace.FormatValues(e.Input))
	}

	return w.Flush()
}

func replayEntry(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	hist := storage.NewHistory(storage.New(cfg.DataDir, logger))
	entry, err := hist.Find(args[0])
	if err != nil {
		return err
	}
	logger.Debug("replaying history entry", zap.String("ref", args[0]), zap.String("label", entry.Label()))

	tr := trace.Generate(entry.Algorithm, entry.Input)
	fmt.Fprintf(cmd.OutOrStdout(), "replaying %s\n", entry.Label())
	return playText(cmd, tr, cfg)
}

func listPresets(cmd *cobra.Command, args []string) error {
	a, err := trace.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "presets for %s:\n", a)
	for _, name := range config.ListPresets(a) {
		fmt.Fprintf(out, "  %-10s  %s\n", name, trace.FormatValues(config.GetPreset(a, name)))
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario %s: %d runs\n", sc.Name, len(sc.Runs))

	results, runErr := automation.NewRunner(st, logger).RunScenario(ctx, sc)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tALGORITHM\tSTEPS\tCOMPARISONS\tSWAPS\tRESULT")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.0f\t%.0f\t%s\n",
			i+1, r.Algorithm, r.Steps, r.Metrics["comparisons"], r.Metrics["swaps"], r.Final)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	algorithms := trace.Algorithms()
	if len(args) > 0 {
		algorithms = make([]trace.Algorithm, 0, len(args))
		for _, name := range args {
			a, err := trace.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			algorithms = append(algorithms, a)
		}
	}

	// The first algorithm only picks the preset family.
	req, err := resolveRequest(cmd, []string{algorithms[0].Slug()})
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	traces, err := trace.GenerateAll(ctx, algorithms, req.input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "comparing %d algorithms on %s\n\n", len(traces), trace.FormatValues(req.input))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARISONS\tSWAPS\tSCANS\tTRACE")
	for _, tr := range traces {
		m := metrics.Summarize(tr)
		kind := "full"
		if tr.Placeholder {
			kind = "placeholder"
		}
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f\t%.0f\t%s\n",
			tr.Algorithm, tr.Len(), m["comparisons"], m["swaps"], m["scans"], kind)
	}
	return w.Flush()
}
