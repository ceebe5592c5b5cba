// Package workerpool runs bounded concurrent work that stops on the first failure.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Process runs process for every item on at most workerCount goroutines. The
// first error cancels the context handed to the remaining calls and is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	if workerCount <= 0 {
		workerCount = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)

	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return process(gctx, item)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Run executes every task concurrently and returns the first error.
func Run(ctx context.Context, tasks ...func(context.Context) error) error {
	return Process(ctx, len(tasks), tasks, func(ctx context.Context, task func(context.Context) error) error {
		return task(ctx)
	})
}
