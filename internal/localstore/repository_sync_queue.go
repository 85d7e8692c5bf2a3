package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/models"
)

// SyncQueueRepository manages the FIFO queue of actions awaiting the server.
// The auto-incremented id column is the authoritative order: actions are
// always replayed oldest-id first.
type SyncQueueRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSyncQueueRepository(db *DB, log *logger.Logger) *SyncQueueRepository {
	return &SyncQueueRepository{
		db:     db,
		logger: log.GetChildLogger(),
	}
}

// Enqueue appends an action to the tail of the queue.
func (r *SyncQueueRepository) Enqueue(ctx context.Context, action models.ActionType, saleRef string, payload json.RawMessage) (models.SyncQueueEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.SyncQueueEntry{}, storageErr("begin enqueue tx", err)
	}
	defer tx.Rollback()

	entry, err := enqueueTx(ctx, tx, action, saleRef, payload)
	if err != nil {
		r.logger.Err(err).Str("func", "Enqueue").Msg("error enqueueing action")
		return models.SyncQueueEntry{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.SyncQueueEntry{}, storageErr("commit enqueue tx", err)
	}

	return entry, nil
}

// GetAllInOrder returns the whole queue, oldest entry first.
func (r *SyncQueueRepository) GetAllInOrder(ctx context.Context) ([]models.SyncQueueEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectQueueInOrderQuery)
	if err != nil {
		r.logger.Err(err).Str("func", "GetAllInOrder").Msg("error querying sync queue")
		return nil, storageErr("select sync queue", err)
	}
	defer rows.Close()

	var entries []models.SyncQueueEntry
	for rows.Next() {
		var entry models.SyncQueueEntry
		if err = rows.Scan(&entry.ID, &entry.Action, &entry.SaleRef, &entry.Payload, &entry.CreatedAt); err != nil {
			return nil, storageErr("scan sync queue entry", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("iterate sync queue", err)
	}

	return entries, nil
}

// Remove deletes a processed entry from the queue.
func (r *SyncQueueRepository) Remove(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteQueueEntryQuery, id)
	if err != nil {
		r.logger.Err(err).Str("func", "Remove").Msg("error removing queue entry")
		return storageErr("delete queue entry", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("rows affected", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", ErrQueueEntryNotFound, id)
	}

	return nil
}

// Count returns the number of entries still awaiting the server.
func (r *SyncQueueRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countQueueQuery).Scan(&count); err != nil {
		return 0, storageErr("count sync queue", err)
	}

	return count, nil
}

// ReenqueueOrphans finds unsynced sales whose create_sale queue entry is
// gone and enqueues a fresh one for each. Runs on startup: a crash between
// removing the entry and marking the sale synced leaves exactly this gap,
// and re-submitting is safe because the server deduplicates by temp id.
func (r *SyncQueueRepository) ReenqueueOrphans(ctx context.Context) (int, error) {
	rows, err := r.db.QueryContext(ctx, selectOrphanedSalesQuery)
	if err != nil {
		return 0, storageErr("select orphaned sales", err)
	}
	defer rows.Close()

	var orphans []string
	for rows.Next() {
		var tempID string
		if err = rows.Scan(&tempID); err != nil {
			return 0, storageErr("scan orphaned sale", err)
		}
		orphans = append(orphans, tempID)
	}
	if err = rows.Err(); err != nil {
		return 0, storageErr("iterate orphaned sales", err)
	}

	for _, tempID := range orphans {
		payload, err := json.Marshal(models.CreateSalePayload{TempID: tempID})
		if err != nil {
			return 0, fmt.Errorf("error marshalling queue payload: %w", err)
		}

		if _, err = r.Enqueue(ctx, models.ActionCreateSale, tempID, payload); err != nil {
			return 0, err
		}
		r.logger.Warn().Str("temp_id", tempID).Msg("re-enqueued orphaned sale for sync")
	}

	return len(orphans), nil
}

// enqueueTx inserts a queue entry inside the caller's transaction and reads
// back the assigned id.
func enqueueTx(ctx context.Context, tx *sql.Tx, action models.ActionType, saleRef string, payload json.RawMessage) (models.SyncQueueEntry, error) {
	entry := models.SyncQueueEntry{
		Action:    action,
		SaleRef:   saleRef,
		Payload:   payload,
		CreatedAt: time.Now(),
	}

	res, err := tx.ExecContext(ctx, enqueueQuery, entry.Action, entry.SaleRef, []byte(entry.Payload), entry.CreatedAt)
	if err != nil {
		return models.SyncQueueEntry{}, storageErr("insert queue entry", err)
	}

	if entry.ID, err = res.LastInsertId(); err != nil {
		return models.SyncQueueEntry{}, storageErr("last insert id", err)
	}

	return entry, nil
}
