package localstore

import (
	"context"
	"fmt"
)

// Collection names the four local collections. The values double as table
// names.
type Collection string

const (
	CollectionProductsCache Collection = "products_cache"
	CollectionClientsCache  Collection = "clients_cache"
	CollectionPendingSales  Collection = "pending_sales"
	CollectionSyncQueue     Collection = "sync_queue"
)

// protectedCollections can never be cleared wholesale. Pending sales and
// queued actions represent real transactions; they leave the store one by
// one, through successful sync, or by explicit operator resolution.
var protectedCollections = map[Collection]bool{
	CollectionPendingSales: true,
	CollectionSyncQueue:    true,
}

var knownCollections = map[Collection]bool{
	CollectionProductsCache: true,
	CollectionClientsCache:  true,
	CollectionPendingSales:  true,
	CollectionSyncQueue:     true,
}

// ClearCollection deletes every row of one read-cache collection. It refuses
// protected collections with [ErrProtectedCollection] regardless of caller.
func (db *DB) ClearCollection(ctx context.Context, c Collection) error {
	if !knownCollections[c] {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, c)
	}
	if protectedCollections[c] {
		return fmt.Errorf("%w: %s", ErrProtectedCollection, c)
	}

	// collection names are compile-time constants validated above, never
	// user input
	if _, err := db.ExecContext(ctx, "DELETE FROM "+string(c)); err != nil {
		db.logger.Err(err).Str("collection", string(c)).Msg("failed to clear collection")
		return storageErr("clear collection "+string(c), err)
	}

	return nil
}
