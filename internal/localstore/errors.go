package localstore

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by local repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStorage marks any failure of the underlying storage engine (disk
	// full, corruption, locked database). It is never swallowed: a swallowed
	// storage failure for a pending sale would mean silent loss of a real
	// transaction.
	ErrStorage = errors.New("local storage failure")

	// ErrProtectedCollection is returned when a clear is attempted on the
	// pending-sales or sync-queue collections. Those hold unsynced
	// transactions and may only shrink through successful synchronization.
	ErrProtectedCollection = errors.New("collection is protected from clearing")

	// ErrUnknownCollection is returned when a collection name does not match
	// any known collection.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrPendingSaleNotFound is returned when a lookup by temp id matches no
	// pending sale.
	ErrPendingSaleNotFound = errors.New("pending sale not found")

	// ErrQueueEntryNotFound is returned when a removal targets a queue entry
	// that does not exist.
	ErrQueueEntryNotFound = errors.New("sync queue entry not found")

	// ErrProductNotFound is returned when a product id is absent from the
	// local cache.
	ErrProductNotFound = errors.New("product not found in local cache")

	// ErrClientNotFound is returned when a client id is absent from the
	// local cache.
	ErrClientNotFound = errors.New("client not found in local cache")

	// ErrDuplicateTempID is returned when a pending sale insert collides on
	// temp id. With random UUIDs this indicates a caller bug, not bad luck.
	ErrDuplicateTempID = errors.New("pending sale with this temp id already exists")
)

// storageErr wraps a driver-level failure so that callers can both read the
// operation that failed and match [ErrStorage] with errors.Is.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrStorage, err))
}
