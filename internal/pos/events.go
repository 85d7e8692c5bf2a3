package pos

import "github.com/ozerovd/go-sale-keeper/models"

// Notifier receives terminal-side events. The TUI implements it to repaint;
// headless runs use [NopNotifier].
type Notifier interface {
	SaleRecorded(sale models.PendingSale)
	SyncFinished(report models.SyncReport)
	SyncError(err error)
	CacheRefreshed(stats models.CacheRefreshStats)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) SaleRecorded(models.PendingSale)         {}
func (NopNotifier) SyncFinished(models.SyncReport)          {}
func (NopNotifier) SyncError(error)                         {}
func (NopNotifier) CacheRefreshed(models.CacheRefreshStats) {}
