package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/leaflet/internal/config"
	"github.com/san-kum/leaflet/internal/storage"
	"github.com/san-kum/leaflet/internal/trace"
	"github.com/san-kum/leaflet/internal/viz"
)

var (
	dataDir    string
	configFile string
	inputText  string
	preset     string
	seed       int64
	speedMs    int
	theme      string
	verbose    bool
	auto       bool
	stepIndex  int
	svgScale   float64
	outFile    string
	showAll    bool

	logger = zap.NewNop()
)

// interactive marks commands that own the terminal; they log nothing.
const interactive = "interactive"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leaflet [algorithm]",
		Short: "step through sorting and searching algorithms",
		Long: `leaflet precomputes every step of an algorithm run and plays it back
in the terminal, one step at a time or on a timer.

Run without arguments to watch Bubble Sort on random input.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		Annotations:  map[string]string{interactive: "true"},
		RunE:         runPlay,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[interactive] != "" {
				logger = zap.NewNop()
				return nil
			}
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", "", "data directory (default ~/.leaflet)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&inputText, "input", "", `values to visualize, e.g. "5, 2, 8" or "[5, 2, 8]"`)
	pf.StringVar(&preset, "preset", "", "use a named input preset")
	pf.Int64Var(&seed, "seed", 0, "random seed for generated input (0 uses the clock)")
	pf.IntVar(&speedMs, "speed", config.DefaultSpeedMs, "delay between automatic steps in ms")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "print every step of a visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runText,
	}
	runCmd.Flags().BoolVar(&auto, "auto", false, "play on a timer at --speed instead of printing at once")

	playCmd := &cobra.Command{
		Use:         "play [algorithm]",
		Short:       "interactive step-by-step player",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{interactive: "true"},
		RunE:        runPlay,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "show recent visualizations",
		Args:  cobra.NoArgs,
		RunE:  showHistory,
	}
	historyCmd.Flags().BoolVar(&showAll, "all", false, "show every entry instead of the most recent")

	replayCmd := &cobra.Command{
		Use:   "replay [id]",
		Short: "rerun a visualization from history (id, id prefix or list position)",
		Args:  cobra.ExactArgs(1),
		RunE:  replayEntry,
	}
	replayCmd.Flags().BoolVar(&auto, "auto", false, "play on a timer at --speed")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [algorithm]",
		Short: "export a trace to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [algorithm]",
		Short: "export a trace to CSV, one row per step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [algorithm]",
		Short: "export one step as an SVG image",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&stepIndex, "step", -1, "step to draw (default: last)")
	exportSVGCmd.Flags().Float64Var(&svgScale, "scale", 1.0, "image scale")
	for _, c := range []*cobra.Command{exportJSONCmd, exportCSVCmd, exportSVGCmd} {
		c.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list input presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "compare algorithms on the same input (default: all)",
		RunE:  compareAlgorithms,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a YAML batch of visualizations",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	rootCmd.AddCommand(runCmd, playCmd, listCmd, historyCmd, replayCmd,
		exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd, compareCmd, scenarioCmd)
	return rootCmd
}

// request is a resolved visualization: config file, preset and flags
// merged, with flags winning.
type request struct {
	cfg       *config.Config
	algorithm trace.Algorithm
	input     []float64
	random    bool
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("speed") {
		cfg.SpeedMs = speedMs
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveRequest(cmd *cobra.Command, args []string) (*request, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	var a trace.Algorithm
	if len(args) > 0 {
		a, err = trace.ParseAlgorithm(args[0])
	} else {
		a, err = cfg.AlgorithmKind()
	}
	if err != nil {
		return nil, err
	}

	req := &request{cfg: cfg, algorithm: a}
	gen := cfg.Generator(time.Now().UnixNano())

	switch {
	case cmd.Flags().Changed("input"):
		req.input, req.random, err = gen.ParseOrRandom(inputText)
		if err != nil {
			return nil, err
		}
		if req.random {
			logger.Warn("input not understood, using random values",
				zap.String("input", inputText), zap.Float64s("values", req.input))
		}
	case preset != "":
		req.input = config.GetPreset(a, preset)
		if req.input == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(a))
		}
	case len(cfg.Input) > 0:
		req.input = cfg.Input
	default:
		req.input, err = gen.Random()
		if err != nil {
			return nil, err
		}
		req.random = true
	}

	logger.Debug("request resolved",
		zap.Stringer("algorithm", a),
		zap.Float64s("input", req.input),
		zap.Bool("random", req.random))
	return req, nil
}

func openStore(cfg *config.Config) (*storage.Store, error) {
	st := storage.New(cfg.DataDir, logger)
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// generate builds the trace for req, records it in the history and reports
// the input choice.
func generate(cmd *cobra.Command, req *request) (trace.Trace, error) {
	tr := trace.Generate(req.algorithm, req.input)
	if err := trace.Validate(&tr); err != nil {
		return tr, err
	}

	st, err := openStore(req.cfg)
	if err != nil {
		return tr, err
	}
	entry, err := storage.NewHistory(st).Record(req.algorithm, req.input)
	if err != nil {
		logger.Warn("history not saved", zap.Error(err))
	} else {
		logger.Debug("history recorded", zap.String("id", entry.ID))
	}

	if req.random {
		fmt.Fprintf(cmd.ErrOrStderr(), "using random input: %s\n", trace.FormatValues(req.input))
	}
	return tr, nil
}
