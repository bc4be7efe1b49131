package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/leaflet/internal/config"
	"github.com/san-kum/leaflet/internal/metrics"
	"github.com/san-kum/leaflet/internal/storage"
	"github.com/san-kum/leaflet/internal/trace"
)

var (
	ErrNoInput       = errors.New("automation: run has neither input nor preset")
	ErrUnknownPreset = errors.New("automation: unknown preset")
)

// Scenario is a scripted batch of visualizations.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Runs        []Run  `yaml:"runs"`
}

// Run is one visualization in a scenario. Input wins over Preset; SaveAs
// names a JSON trace export under the store directory.
type Run struct {
	Algorithm string    `yaml:"algorithm"`
	Input     []float64 `yaml:"input,flow"`
	Preset    string    `yaml:"preset"`
	SaveAs    string    `yaml:"save_as"`
}

// Result summarizes one finished run.
type Result struct {
	Algorithm   trace.Algorithm
	Input       []float64
	Steps       int
	Placeholder bool
	Final       string
	Metrics     map[string]float64
	HistoryID   string
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Runner executes scenarios against a store.
type Runner struct {
	store   *storage.Store
	history *storage.History
	logger  *zap.Logger
}

func NewRunner(store *storage.Store, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{store: store, history: storage.NewHistory(store), logger: logger}
}

// RunScenario runs scenario against store without logging.
func RunScenario(ctx context.Context, scenario *Scenario, store *storage.Store) ([]Result, error) {
	return NewRunner(store, nil).RunScenario(ctx, scenario)
}

// RunScenario generates and validates every run in order, records each in
// the history and returns the results so far. Cancellation is checked
// between runs.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scenario.Runs))

	for i, run := range scenario.Runs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := r.runOne(run)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}
		r.logger.Info("scenario run complete",
			zap.String("scenario", scenario.Name),
			zap.Int("run", i+1),
			zap.Stringer("algorithm", res.Algorithm),
			zap.Int("steps", res.Steps))

		results = append(results, res)
	}

	return results, nil
}

func (r *Runner) runOne(run Run) (Result, error) {
	a, err := trace.ParseAlgorithm(run.Algorithm)
	if err != nil {
		return Result{}, err
	}

	vals := run.Input
	if len(vals) == 0 {
		if run.Preset == "" {
			return Result{}, ErrNoInput
		}
		vals = config.GetPreset(a, run.Preset)
		if vals == nil {
			return Result{}, fmt.Errorf("%w: %q for %s", ErrUnknownPreset, run.Preset, a)
		}
	}
	if err := trace.CheckFinite(vals); err != nil {
		return Result{}, err
	}

	tr := trace.Generate(a, vals)
	if err := trace.Validate(&tr); err != nil {
		return Result{}, err
	}

	entry, err := r.history.Record(a, vals)
	if err != nil {
		return Result{}, fmt.Errorf("record history: %w", err)
	}

	if run.SaveAs != "" {
		if err := r.store.Save(run.SaveAs, storage.NewExportData(tr)); err != nil {
			return Result{}, fmt.Errorf("save %s: %w", run.SaveAs, err)
		}
	}

	final, _ := tr.Final()
	return Result{
		Algorithm:   a,
		Input:       vals,
		Steps:       tr.Len(),
		Placeholder: tr.Placeholder,
		Final:       final.Narration,
		Metrics:     metrics.Summarize(tr),
		HistoryID:   entry.ID,
	}, nil
}
