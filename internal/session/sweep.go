package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/san-kum/platterlab/internal/config"
)

// SweepRun names one configuration taking part in a sweep.
type SweepRun struct {
	Name   string
	Config *config.Config
}

// Sweep runs one session per configuration concurrently and collects
// the results by name. The setup hook runs before each session starts
// so the caller can attach metrics and script the deck.
func Sweep(ctx context.Context, runs []SweepRun, frames int, logger zerolog.Logger, setup func(*Session)) (map[string]*Result, error) {
	results := make([]*Result, len(runs))
	errs := make([]error, len(runs))

	var wg sync.WaitGroup
	for i, run := range runs {
		wg.Add(1)
		go func(idx int, run SweepRun) {
			defer wg.Done()

			sess := New(run.Config, logger.With().Str("sweep", run.Name).Logger())
			if setup != nil {
				setup(sess)
			}
			results[idx], errs[idx] = sess.Run(ctx, frames, run.Config.Dt, nil)
		}(i, run)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[string]*Result, len(runs))
	for i, run := range runs {
		out[run.Name] = results[i]
	}
	return out, nil
}
