package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/models"
)

// PendingSaleRepository stores offline sales in the pending_sales collection.
type PendingSaleRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPendingSaleRepository(db *DB, log *logger.Logger) *PendingSaleRepository {
	return &PendingSaleRepository{
		db:     db,
		logger: log.GetChildLogger(),
	}
}

// CreatePendingSale writes the sale and its create_sale queue entry in a
// single transaction. Either both land on disk or neither does: a sale
// without a queue entry would never reach the server, a queue entry without
// a sale could never be replayed.
func (r *PendingSaleRepository) CreatePendingSale(ctx context.Context, sale models.PendingSale) (models.SyncQueueEntry, error) {
	items, payments, err := marshalSaleDetails(sale)
	if err != nil {
		return models.SyncQueueEntry{}, err
	}

	payload, err := json.Marshal(models.CreateSalePayload{TempID: sale.TempID})
	if err != nil {
		return models.SyncQueueEntry{}, fmt.Errorf("error marshalling queue payload: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.SyncQueueEntry{}, storageErr("begin create pending sale tx", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertPendingSaleQuery,
		sale.TempID, sale.ServerID, sale.CreatedAtLocal, items, payments,
		sale.TotalAmount.String(), sale.PaidAmount.String(), sale.SyncStatus, sale.LastError)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return models.SyncQueueEntry{}, fmt.Errorf("%w: %s", ErrDuplicateTempID, sale.TempID)
		}
		r.logger.Err(err).Str("func", "CreatePendingSale").Msg("error inserting pending sale")
		return models.SyncQueueEntry{}, storageErr("insert pending sale", err)
	}

	entry, err := enqueueTx(ctx, tx, models.ActionCreateSale, sale.TempID, payload)
	if err != nil {
		r.logger.Err(err).Str("func", "CreatePendingSale").Msg("error enqueueing sale for sync")
		return models.SyncQueueEntry{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.SyncQueueEntry{}, storageErr("commit create pending sale tx", err)
	}

	return entry, nil
}

// GetPendingSale returns one sale by its temp id.
func (r *PendingSaleRepository) GetPendingSale(ctx context.Context, tempID string) (models.PendingSale, error) {
	row := r.db.QueryRowContext(ctx, selectPendingSaleQuery, tempID)

	sale, err := scanPendingSale(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PendingSale{}, fmt.Errorf("%w: %s", ErrPendingSaleNotFound, tempID)
	}
	if err != nil {
		r.logger.Err(err).Str("func", "GetPendingSale").Msg("error getting pending sale")
		return models.PendingSale{}, storageErr("select pending sale", err)
	}

	return sale, nil
}

// GetAllPendingSales returns every locally recorded sale, oldest first.
func (r *PendingSaleRepository) GetAllPendingSales(ctx context.Context) ([]models.PendingSale, error) {
	return r.querySales(ctx, selectAllPendingSalesQuery)
}

// GetPendingSalesByStatus returns sales filtered by sync status, oldest first.
func (r *PendingSaleRepository) GetPendingSalesByStatus(ctx context.Context, status models.SyncStatus) ([]models.PendingSale, error) {
	return r.querySales(ctx, selectPendingSalesByStatusQuery, status)
}

// SetSyncStatus transitions a sale's sync status and records the error text
// that caused a failed transition (empty otherwise).
func (r *PendingSaleRepository) SetSyncStatus(ctx context.Context, tempID string, status models.SyncStatus, lastError string) error {
	res, err := r.db.ExecContext(ctx, updatePendingSaleStatusQuery, status, lastError, tempID)
	if err != nil {
		r.logger.Err(err).Str("func", "SetSyncStatus").Msg("error updating sync status")
		return storageErr("update sync status", err)
	}

	return checkSaleUpdated(res, tempID)
}

// MarkSynced records the server-assigned id and flips the sale to synced.
func (r *PendingSaleRepository) MarkSynced(ctx context.Context, tempID string, serverID int64) error {
	res, err := r.db.ExecContext(ctx, updatePendingSaleSyncedQuery, serverID, models.SyncStatusSynced, tempID)
	if err != nil {
		r.logger.Err(err).Str("func", "MarkSynced").Msg("error marking sale synced")
		return storageErr("mark sale synced", err)
	}

	return checkSaleUpdated(res, tempID)
}

// AppendPayment adds a payment to a recorded sale and enqueues a
// record_payment action, in one transaction. paymentRef is the payment's own
// idempotency key, distinct from the sale's temp id.
func (r *PendingSaleRepository) AppendPayment(ctx context.Context, tempID string, paymentRef string, payment models.PaymentRecord) (models.SyncQueueEntry, error) {
	sale, err := r.GetPendingSale(ctx, tempID)
	if err != nil {
		return models.SyncQueueEntry{}, err
	}

	sale.Payments = append(sale.Payments, payment)
	sale.PaidAmount = sale.PaidAmount.Add(payment.Amount)

	payments, err := json.Marshal(sale.Payments)
	if err != nil {
		return models.SyncQueueEntry{}, fmt.Errorf("error marshalling payments: %w", err)
	}

	payload, err := json.Marshal(models.RecordPaymentPayload{
		SaleTempID: tempID,
		PaymentRef: paymentRef,
		Payment:    payment,
	})
	if err != nil {
		return models.SyncQueueEntry{}, fmt.Errorf("error marshalling queue payload: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.SyncQueueEntry{}, storageErr("begin append payment tx", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, updatePendingSalePaymentsQuery, payments, sale.PaidAmount.String(), tempID); err != nil {
		r.logger.Err(err).Str("func", "AppendPayment").Msg("error updating sale payments")
		return models.SyncQueueEntry{}, storageErr("update sale payments", err)
	}

	entry, err := enqueueTx(ctx, tx, models.ActionRecordPayment, tempID, payload)
	if err != nil {
		r.logger.Err(err).Str("func", "AppendPayment").Msg("error enqueueing payment for sync")
		return models.SyncQueueEntry{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.SyncQueueEntry{}, storageErr("commit append payment tx", err)
	}

	return entry, nil
}

// CountByStatus counts sales in the given sync status.
func (r *PendingSaleRepository) CountByStatus(ctx context.Context, status models.SyncStatus) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countPendingSalesByStatusQuery, status).Scan(&count); err != nil {
		return 0, storageErr("count pending sales", err)
	}

	return count, nil
}

func (r *PendingSaleRepository) querySales(ctx context.Context, query string, args ...any) ([]models.PendingSale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "querySales").Msg("error querying pending sales")
		return nil, storageErr("select pending sales", err)
	}
	defer rows.Close()

	var sales []models.PendingSale
	for rows.Next() {
		sale, err := scanPendingSale(rows)
		if err != nil {
			return nil, storageErr("scan pending sale", err)
		}
		sales = append(sales, sale)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("iterate pending sales", err)
	}

	return sales, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPendingSale(row rowScanner) (models.PendingSale, error) {
	var (
		sale        models.PendingSale
		items       []byte
		payments    []byte
		total, paid string
	)

	err := row.Scan(&sale.TempID, &sale.ServerID, &sale.CreatedAtLocal,
		&items, &payments, &total, &paid, &sale.SyncStatus, &sale.LastError)
	if err != nil {
		return models.PendingSale{}, err
	}

	if err = json.Unmarshal(items, &sale.Items); err != nil {
		return models.PendingSale{}, fmt.Errorf("error unmarshalling sale items: %w", err)
	}
	if err = json.Unmarshal(payments, &sale.Payments); err != nil {
		return models.PendingSale{}, fmt.Errorf("error unmarshalling sale payments: %w", err)
	}
	if sale.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return models.PendingSale{}, fmt.Errorf("error parsing total amount: %w", err)
	}
	if sale.PaidAmount, err = decimal.NewFromString(paid); err != nil {
		return models.PendingSale{}, fmt.Errorf("error parsing paid amount: %w", err)
	}

	return sale, nil
}

func marshalSaleDetails(sale models.PendingSale) (items []byte, payments []byte, err error) {
	if items, err = json.Marshal(sale.Items); err != nil {
		return nil, nil, fmt.Errorf("error marshalling sale items: %w", err)
	}
	if sale.Payments == nil {
		sale.Payments = []models.PaymentRecord{}
	}
	if payments, err = json.Marshal(sale.Payments); err != nil {
		return nil, nil, fmt.Errorf("error marshalling sale payments: %w", err)
	}

	return items, payments, nil
}

func checkSaleUpdated(res sql.Result, tempID string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("rows affected", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrPendingSaleNotFound, tempID)
	}

	return nil
}
