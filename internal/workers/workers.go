// Package workers holds the server's background jobs. Today that is a single
// job: the retention sweeper that releases old payment idempotency keys.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/ozerovd/go-sale-keeper/internal/config"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/store"
)

// Worker is a background job with an explicit lifecycle.
type Worker interface {
	// Start launches the job. It stops any previous run first.
	Start(ctx context.Context)

	// Stop halts the job and blocks until its goroutine has exited.
	Stop()
}

const (
	defaultSweepInterval = time.Hour
	defaultRefRetention  = 30 * 24 * time.Hour
)

// RefSweeper periodically NULLs payment_ref keys older than the retention
// window. The payment rows themselves are kept; only the dedup keys are
// released, so the unique index stays small while old sales remain intact.
type RefSweeper struct {
	sales     store.SaleRepository
	interval  time.Duration
	retention time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRefSweeper(sales store.SaleRepository, cfg config.Workers, logger *logger.Logger) *RefSweeper {
	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	retention := cfg.RefRetention
	if retention <= 0 {
		retention = defaultRefRetention
	}

	return &RefSweeper{
		sales:     sales,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

// Start implements [Worker]. The first sweep happens one interval after
// start; a restart of the server is never more than one retention window
// behind.
func (s *RefSweeper) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				s.sweep(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker]. Safe to call when the sweeper is not running.
func (s *RefSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *RefSweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.retention)

	released, err := s.sales.PrunePaymentRefs(ctx, cutoff)
	if err != nil {
		s.logger.Err(err).Msg("payment ref sweep failed")
		return
	}

	if released > 0 {
		s.logger.Info().
			Int64("released", released).
			Time("cutoff", cutoff).
			Msg("payment refs released")
	}
}
