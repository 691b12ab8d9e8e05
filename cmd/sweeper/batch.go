package main

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dchistyakov/sweeper/internal/mines"
	"github.com/dchistyakov/sweeper/internal/solver"
)

type batchStats struct {
	runs    int
	solved  int
	luckSum float32
}

func (s batchStats) successRate() float32 {
	if s.runs == 0 {
		return 0
	}
	return float32(s.solved) / float32(s.runs)
}

// meanLuck averages luck over successful runs only.
func (s batchStats) meanLuck() float32 {
	if s.solved == 0 {
		return 0
	}
	return s.luckSum / float32(s.solved)
}

// runBatch solves opts.iterations independent fields concurrently.
// Every trial owns its own Solver and Minefield pair, so the only
// shared state is the stats accumulator.
func runBatch(params mines.GameParams, opts options) (batchStats, error) {
	var (
		mu    sync.Mutex
		stats batchStats
	)

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for n := range opts.iterations {
		g.Go(func() error {
			field, err := newField(opts, params, uint64(n))
			if err != nil {
				return err
			}
			s, err := solver.New(field)
			if err != nil {
				return err
			}
			solved, luck, err := s.Solve()
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			stats.runs++
			if solved {
				stats.solved++
				stats.luckSum += luck
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}
