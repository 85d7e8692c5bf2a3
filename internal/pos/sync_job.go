package pos

import (
	"context"
	"sync"
	"time"
)

type syncJob struct {
	synchronizer Synchronizer

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that calls synchronizer.SyncNow on a ticker.
// The job is idle until Start is called.
func NewSyncJob(synchronizer Synchronizer) SyncJob {
	return &syncJob{synchronizer: synchronizer}
}

// Start implements [SyncJob]. It stops any previously running job, then
// launches a background goroutine that runs a sync every interval. If
// interval is zero or negative it defaults to 30 seconds. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// a manual sync may be in flight, ErrSyncInProgress just
				// means this tick is skipped
				_, _ = j.synchronizer.SyncNow(jobCtx)
			}
		}
	}()
}

// Stop implements [SyncJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
