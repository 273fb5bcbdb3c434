package inplace

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// parallelSorter holds the state shared by the workers of one SortParallel call.
type parallelSorter[E any] struct {
	ctx         context.Context
	group       *errgroup.Group
	compareFunc CompareFunc[E]
	config      *Config
}

// SortParallel sorts s in ascending order as determined by compareFunc, sorting
// disjoint sub-ranges concurrently. Each range of at least config.ParallelThreshold
// elements is partitioned as in Sort, and the right side is handed to another worker
// while the current one carries on with the left side. At most config.NumWorkers
// workers run at once; when all are busy the range is sorted by the current worker.
//
// config can be nil to use the defaults, or only set the non-default values desired.
// SortParallel blocks until s is sorted or an error occurs. On cancellation of ctx,
// or a panic in compareFunc (reported as a *ComparisonError), the error is returned
// and s is left permuted but not necessarily sorted.
//
// SortParallel is NOT stable.
func SortParallel[E any](ctx context.Context, s []E, compareFunc CompareFunc[E], config *Config) error {
	config, err := mergeConfig(config)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.NumWorkers)
	ps := &parallelSorter[E]{
		ctx:         gctx,
		group:       g,
		compareFunc: compareFunc,
		config:      config,
	}

	depth := depthBudget(len(s))
	g.Go(func() error {
		return ps.sortRange(s, 0, depth)
	})
	if err := g.Wait(); err != nil {
		config.Logger.Error("parallel sort failed", zap.Int("len", len(s)), zap.Error(err))
		return err
	}
	return nil
}

// sortRange is a worker sorting s, which starts at offset in the caller's slice.
// Right-hand partitions are offered to the group; if no worker is free the current
// worker sorts them itself.
func (ps *parallelSorter[E]) sortRange(s []E, offset, depth int) (err error) {
	defer func() {
		// Recover from panics in comparison function
		if r := recover(); r != nil {
			err = NewComparisonError(r, "SortParallel")
		}
	}()

	for len(s) >= ps.config.ParallelThreshold {
		if err := ps.ctx.Err(); err != nil {
			return err
		}
		if depth == 0 {
			HeapSort(s, ps.compareFunc)
			return nil
		}
		depth--

		p := partitionMedian3(s, ps.compareFunc)
		right, rightOffset, rightDepth := s[p+1:], offset+p+1, depth
		if ps.group.TryGo(func() error { return ps.sortRange(right, rightOffset, rightDepth) }) {
			ps.config.Logger.Debug("forked range",
				zap.Int("offset", rightOffset),
				zap.Int("len", len(right)))
		} else if err := ps.sortRange(right, rightOffset, rightDepth); err != nil {
			return err
		}
		s = s[:p]
	}

	if err := ps.ctx.Err(); err != nil {
		return err
	}
	quickSort(s, ps.compareFunc, depth)
	return nil
}
