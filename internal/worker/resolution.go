package worker

import (
	"context"
	"sync"
	"time"

	"match-wager/internal/service"

	"github.com/rs/zerolog"
)

// ResolutionWorker drives the periodic evaluation of all in-play wagers.
// Manual triggers go straight to WagerService.EvaluateAll and may run
// concurrently with the ticker: resolution is test-and-set, so overlap
// is harmless.
type ResolutionWorker struct {
	service  service.WagerService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewResolutionWorker(svc service.WagerService, interval time.Duration, logger zerolog.Logger) *ResolutionWorker {
	return &ResolutionWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *ResolutionWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Resolution worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running wager evaluation round")
				resolved, err := w.service.EvaluateAll(ctx)
				if err != nil {
					w.logger.Error().Err(err).Msg("Failed to run wager evaluation round")
					continue
				}
				if len(resolved) > 0 {
					w.logger.Info().Int("resolved", len(resolved)).Msg("Wager evaluation round settled wagers")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Resolution worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Resolution worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *ResolutionWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
