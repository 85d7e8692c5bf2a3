// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/models"
)

// saleRepository is the PostgreSQL-backed implementation of [SaleRepository].
// It owns the sales, sale_items and sale_payments tables and enforces both
// idempotency constraints (client_ref for sales, payment_ref for payments) at
// the database level, where they survive races between concurrent terminals.
type saleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSaleRepository constructs a [SaleRepository] backed by the provided
// database connection and logger.
func NewSaleRepository(db *DB, logger *logger.Logger) SaleRepository {
	logger.Debug().Msg("creating sale repository")
	return &saleRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSale implements [SaleRepository]. The whole sale commits or nothing
// does: the sale row, every item with its stock decrement, and the initial
// payments share one transaction.
func (r *saleRepository) CreateSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Sale{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, insertSale,
		sale.ClientRef, sale.CashierID, sale.TotalAmount, sale.PaidAmount, sale.Status, sale.CreatedAtLocal)
	if err = row.Scan(&sale.ID, &sale.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Sale{}, ErrDuplicateClientRef
		}
		log.Err(err).Str("func", "*saleRepository.CreateSale").Msg("error inserting sale")
		return models.Sale{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	for _, item := range sale.Items {
		if err = r.takeStock(ctx, tx, item); err != nil {
			return models.Sale{}, err
		}

		if _, err = tx.ExecContext(ctx, insertSaleItem,
			sale.ID, item.ProductID, item.Quantity, item.UnitPrice, item.BatchID); err != nil {
			log.Err(err).Str("func", "*saleRepository.CreateSale").Msg("error inserting sale item")
			return models.Sale{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	for _, payment := range sale.Payments {
		// payments embedded in the original sale carry no standalone
		// idempotency key, the whole sale dedups by client_ref
		row = tx.QueryRowContext(ctx, insertSalePayment,
			sale.ID, nil, payment.Method, payment.Amount, payment.ReferenceNumber, paidAtOrNow(payment))
		var paymentID int64
		if err = row.Scan(&paymentID); err != nil {
			log.Err(err).Str("func", "*saleRepository.CreateSale").Msg("error inserting sale payment")
			return models.Sale{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return models.Sale{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return sale, nil
}

// takeStock decrements the product's stock inside the sale transaction. The
// UPDATE's WHERE clause makes the check-and-take atomic under concurrency.
func (r *saleRepository) takeStock(ctx context.Context, tx *sql.Tx, item models.SaleItem) error {
	res, err := tx.ExecContext(ctx, decrementStock, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err = tx.QueryRowContext(ctx, productExists, item.ProductID).Scan(&exists); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: id=%d", ErrProductNotFound, item.ProductID)
	}

	return fmt.Errorf("%w: product %d, requested %d", ErrInsufficientStock, item.ProductID, item.Quantity)
}

// FindSaleByClientRef implements [SaleRepository].
func (r *saleRepository) FindSaleByClientRef(ctx context.Context, clientRef string) (models.Sale, error) {
	log := logger.FromContext(ctx)

	var sale models.Sale
	row := r.db.QueryRowContext(ctx, findSaleByClientRef, clientRef)

	err := row.Scan(&sale.ID, &sale.ClientRef, &sale.CashierID, &sale.TotalAmount,
		&sale.PaidAmount, &sale.Status, &sale.CreatedAtLocal, &sale.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sale{}, fmt.Errorf("%w: %s", ErrSaleNotFound, clientRef)
	}
	if err != nil {
		log.Err(err).Str("func", "*saleRepository.FindSaleByClientRef").Msg("error finding sale")
		return models.Sale{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if sale.Items, err = r.loadItems(ctx, sale.ID); err != nil {
		return models.Sale{}, err
	}
	if sale.Payments, err = r.loadPayments(ctx, sale.ID); err != nil {
		return models.Sale{}, err
	}

	return sale, nil
}

func (r *saleRepository) loadItems(ctx context.Context, saleID int64) ([]models.SaleItem, error) {
	rows, err := r.db.QueryContext(ctx, findSaleItems, saleID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.SaleItem
	for rows.Next() {
		var item models.SaleItem
		if err = rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.BatchID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *saleRepository) loadPayments(ctx context.Context, saleID int64) ([]models.PaymentRecord, error) {
	rows, err := r.db.QueryContext(ctx, findSalePayments, saleID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var payments []models.PaymentRecord
	for rows.Next() {
		var payment models.PaymentRecord
		if err = rows.Scan(&payment.Method, &payment.Amount, &payment.PaidAt, &payment.ReferenceNumber); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

// AddPayment implements [SaleRepository]. A payment_ref collision means the
// payment already landed; the stored id is returned instead of booking it
// twice.
func (r *saleRepository) AddPayment(ctx context.Context, clientRef, paymentRef string, payment models.PaymentRecord) (int64, bool, error) {
	log := logger.FromContext(ctx)

	var saleID int64
	err := r.db.QueryRowContext(ctx, findSaleIDByClientRef, clientRef).Scan(&saleID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, fmt.Errorf("%w: %s", ErrSaleNotFound, clientRef)
	}
	if err != nil {
		return 0, false, fmt.Errorf("unexpected DB error: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var paymentID int64
	row := tx.QueryRowContext(ctx, insertSalePayment,
		saleID, paymentRef, payment.Method, payment.Amount, payment.ReferenceNumber, paidAtOrNow(payment))
	if err = row.Scan(&paymentID); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return r.findExistingPayment(ctx, paymentRef)
		}
		log.Err(err).Str("func", "*saleRepository.AddPayment").Msg("error inserting payment")
		return 0, false, fmt.Errorf("unexpected DB error: %w", err)
	}

	if _, err = tx.ExecContext(ctx, increasePaidAmount, saleID, payment.Amount); err != nil {
		log.Err(err).Str("func", "*saleRepository.AddPayment").Msg("error updating paid amount")
		return 0, false, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return paymentID, false, nil
}

func (r *saleRepository) findExistingPayment(ctx context.Context, paymentRef string) (int64, bool, error) {
	var paymentID int64
	if err := r.db.QueryRowContext(ctx, findPaymentIDByRef, paymentRef).Scan(&paymentID); err != nil {
		return 0, false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return paymentID, true, nil
}

// ListSales implements [SaleRepository]. The filter is assembled dynamically
// with squirrel; the summary aggregates the same filtered set, not just the
// returned page.
func (r *saleRepository) ListSales(ctx context.Context, filter models.SaleFilter) ([]models.Sale, models.SalesSummary, error) {
	log := logger.FromContext(ctx)

	base := sq.Select().From("sales").PlaceholderFormat(sq.Dollar)
	base = applySaleFilter(base, filter)

	listQuery := base.
		Columns("id", "client_ref", "cashier_id", "total_amount", "paid_amount", "status", "created_at_local", "created_at").
		OrderBy("created_at DESC")
	if filter.Limit > 0 {
		listQuery = listQuery.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		listQuery = listQuery.Offset(uint64(filter.Offset))
	}

	query, args, err := listQuery.ToSql()
	if err != nil {
		return nil, models.SalesSummary{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*saleRepository.ListSales").Msg("error listing sales")
		return nil, models.SalesSummary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var sale models.Sale
		if err = rows.Scan(&sale.ID, &sale.ClientRef, &sale.CashierID, &sale.TotalAmount,
			&sale.PaidAmount, &sale.Status, &sale.CreatedAtLocal, &sale.CreatedAt); err != nil {
			return nil, models.SalesSummary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		sales = append(sales, sale)
	}
	if err = rows.Err(); err != nil {
		return nil, models.SalesSummary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	summary, err := r.summarize(ctx, filter)
	if err != nil {
		return nil, models.SalesSummary{}, err
	}

	return sales, summary, nil
}

func (r *saleRepository) summarize(ctx context.Context, filter models.SaleFilter) (models.SalesSummary, error) {
	query, args, err := applySaleFilter(
		sq.Select("COUNT(*)", "COALESCE(SUM(total_amount), 0)", "COALESCE(SUM(paid_amount), 0)").
			From("sales").PlaceholderFormat(sq.Dollar),
		filter,
	).ToSql()
	if err != nil {
		return models.SalesSummary{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var summary models.SalesSummary
	if err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&summary.Count, &summary.TotalAmount, &summary.PaidAmount); err != nil {
		return models.SalesSummary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return summary, nil
}

func applySaleFilter(builder sq.SelectBuilder, filter models.SaleFilter) sq.SelectBuilder {
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.Lt{"created_at": *filter.To})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.ClientRef != "" {
		builder = builder.Where(sq.Eq{"client_ref": filter.ClientRef})
	}

	return builder
}

// PrunePaymentRefs implements [SaleRepository].
func (r *saleRepository) PrunePaymentRefs(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, prunePaymentRefs, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return res.RowsAffected()
}

func paidAtOrNow(payment models.PaymentRecord) time.Time {
	if payment.PaidAt.IsZero() {
		return time.Now()
	}

	return payment.PaidAt
}
