package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozerovd/go-sale-keeper/internal/config"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/models"
)

// sweepCountingRepository counts PrunePaymentRefs calls and records the last
// cutoff it was given. The other SaleRepository methods are unused by the
// sweeper.
type sweepCountingRepository struct {
	calls      atomic.Int64
	lastCutoff atomic.Value
}

func (r *sweepCountingRepository) CreateSale(_ context.Context, sale models.Sale) (models.Sale, error) {
	return sale, nil
}

func (r *sweepCountingRepository) FindSaleByClientRef(_ context.Context, _ string) (models.Sale, error) {
	return models.Sale{}, nil
}

func (r *sweepCountingRepository) AddPayment(_ context.Context, _, _ string, _ models.PaymentRecord) (int64, bool, error) {
	return 0, false, nil
}

func (r *sweepCountingRepository) ListSales(_ context.Context, _ models.SaleFilter) ([]models.Sale, models.SalesSummary, error) {
	return nil, models.SalesSummary{}, nil
}

func (r *sweepCountingRepository) PrunePaymentRefs(_ context.Context, cutoff time.Time) (int64, error) {
	r.calls.Add(1)
	r.lastCutoff.Store(cutoff)
	return 1, nil
}

func waitForCalls(t *testing.T, repo *sweepCountingRepository, want int64) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for repo.calls.Load() < want {
		select {
		case <-deadline:
			t.Fatalf("expected at least %d sweeps, got %d", want, repo.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRefSweeper_RunsOnTicker(t *testing.T) {
	repo := &sweepCountingRepository{}
	sweeper := NewRefSweeper(repo, config.Workers{
		SweepInterval: 10 * time.Millisecond,
		RefRetention:  24 * time.Hour,
	}, logger.Nop())

	sweeper.Start(context.Background())
	defer sweeper.Stop()

	waitForCalls(t, repo, 2)

	cutoff, ok := repo.lastCutoff.Load().(time.Time)
	require.True(t, ok)

	// cutoff = now - retention
	expected := time.Now().Add(-24 * time.Hour)
	assert.WithinDuration(t, expected, cutoff, time.Minute)
}

func TestRefSweeper_StopHaltsSweeps(t *testing.T) {
	repo := &sweepCountingRepository{}
	sweeper := NewRefSweeper(repo, config.Workers{
		SweepInterval: 10 * time.Millisecond,
		RefRetention:  time.Hour,
	}, logger.Nop())

	sweeper.Start(context.Background())
	waitForCalls(t, repo, 1)
	sweeper.Stop()

	after := repo.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, repo.calls.Load(), "no sweeps must run after Stop")
}

func TestRefSweeper_StopWithoutStartIsNoop(t *testing.T) {
	sweeper := NewRefSweeper(&sweepCountingRepository{}, config.Workers{}, logger.Nop())
	sweeper.Stop()
}

func TestRefSweeper_ContextCancelStops(t *testing.T) {
	repo := &sweepCountingRepository{}
	sweeper := NewRefSweeper(repo, config.Workers{
		SweepInterval: 10 * time.Millisecond,
		RefRetention:  time.Hour,
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	sweeper.Start(ctx)
	waitForCalls(t, repo, 1)

	cancel()
	time.Sleep(30 * time.Millisecond)

	after := repo.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, repo.calls.Load(), "no sweeps must run after context cancellation")
}

func TestRefSweeper_DefaultsAppliedForZeroConfig(t *testing.T) {
	sweeper := NewRefSweeper(&sweepCountingRepository{}, config.Workers{}, logger.Nop())

	assert.Equal(t, defaultSweepInterval, sweeper.interval)
	assert.Equal(t, defaultRefRetention, sweeper.retention)
}
