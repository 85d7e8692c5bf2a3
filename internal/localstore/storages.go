package localstore

import (
	"github.com/ozerovd/go-sale-keeper/internal/logger"
)

// ClientStorages bundles the local repositories handed to the terminal's
// services.
type ClientStorages struct {
	DB           *DB
	PendingSales PendingSales
	SyncQueue    SyncQueue
	Cache        Cache
}

// NewClientStorages builds repositories over an already connected and
// migrated local database.
func NewClientStorages(db *DB, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		DB:           db,
		PendingSales: NewPendingSaleRepository(db, log),
		SyncQueue:    NewSyncQueueRepository(db, log),
		Cache:        NewCacheRepository(db, log),
	}
}
