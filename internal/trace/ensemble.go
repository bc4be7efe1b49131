package trace

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// GenerateAll builds one trace per algorithm over the same input,
// concurrently. Results keep the order of algorithms. It returns ctx.Err()
// if the context ends before every trace is ready.
func GenerateAll(ctx context.Context, algorithms []Algorithm, input []float64) ([]Trace, error) {
	traces := make([]Trace, len(algorithms))

	g, gctx := errgroup.WithContext(ctx)
	for i, a := range algorithms {
		i, a := i, a
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			traces[i] = Generate(a, input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return traces, nil
}
