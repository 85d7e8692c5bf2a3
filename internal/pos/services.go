package pos

import (
	"github.com/ozerovd/go-sale-keeper/internal/adapter"
	"github.com/ozerovd/go-sale-keeper/internal/localstore"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
)

// Services bundles the terminal-side services wired over one local store and
// one server adapter.
type Services struct {
	Recorder       Recorder
	Synchronizer   Synchronizer
	CacheRefresher CacheRefresher
	SyncJob        SyncJob
}

func NewServices(storages *localstore.ClientStorages, server adapter.ServerAdapter, notifier Notifier, cachePageSize int, log *logger.Logger) *Services {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	synchronizer := NewSynchronizer(storages.PendingSales, storages.SyncQueue, server, notifier, log)

	return &Services{
		Recorder:       NewRecorder(storages.PendingSales, notifier, log),
		Synchronizer:   synchronizer,
		CacheRefresher: NewCacheRefresher(storages.DB, storages.Cache, server, notifier, cachePageSize, log),
		SyncJob:        NewSyncJob(synchronizer),
	}
}
