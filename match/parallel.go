package match

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Job is one independent hierarchical matching problem.
type Job struct {
	A, B       [][]float64
	Thresholds []float64
}

// HierarchicalAll runs [Hierarchical] for every job concurrently and returns
// the results in job order. The first failing job cancels the jobs that have
// not started yet.
func HierarchicalAll(ctx context.Context, jobs []Job, opts ...Option) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for k, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Hierarchical(job.A, job.B, job.Thresholds, opts...)
			if err != nil {
				return fmt.Errorf("job %d: %w", k, err)
			}
			results[k] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
