package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ozerovd/go-sale-keeper/internal/localstore"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/utils"
	"github.com/ozerovd/go-sale-keeper/models"
)

type recorder struct {
	sales    localstore.PendingSales
	ids      *utils.UUIDGenerator
	notifier Notifier
	logger   *logger.Logger
}

// NewRecorder builds the till-side sale recorder over the local store.
func NewRecorder(sales localstore.PendingSales, notifier Notifier, log *logger.Logger) Recorder {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &recorder{
		sales:    sales,
		ids:      utils.NewUUIDGenerator(),
		notifier: notifier,
		logger:   log.GetChildLogger(),
	}
}

// RecordSale implements [Recorder]. The sale is durable the moment this
// returns: it and its queue entry are committed in one local transaction.
func (r *recorder) RecordSale(ctx context.Context, items []models.SaleItem, payments []models.PaymentRecord) (models.PendingSale, error) {
	if err := validateItems(items); err != nil {
		return models.PendingSale{}, err
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	paid := decimal.Zero
	for _, p := range payments {
		if !p.Amount.IsPositive() {
			return models.PendingSale{}, ErrInvalidPayment
		}
		paid = paid.Add(p.Amount)
	}
	if paid.GreaterThan(total) {
		return models.PendingSale{}, fmt.Errorf("%w: paid %s, total %s", ErrOverpayment, paid, total)
	}

	if payments == nil {
		payments = []models.PaymentRecord{}
	}

	sale := models.PendingSale{
		TempID:         r.ids.Generate(),
		CreatedAtLocal: time.Now(),
		Items:          items,
		Payments:       payments,
		TotalAmount:    total,
		PaidAmount:     paid,
		SyncStatus:     models.SyncStatusPending,
	}

	entry, err := r.sales.CreatePendingSale(ctx, sale)
	if err != nil {
		r.logger.Err(err).Str("func", "RecordSale").Msg("error storing sale locally")
		return models.PendingSale{}, fmt.Errorf("record sale: %w", err)
	}

	r.logger.Info().Str("temp_id", sale.TempID).Int64("queue_id", entry.ID).
		Str("total", total.String()).Msg("sale recorded locally")
	r.notifier.SaleRecorded(sale)

	return sale, nil
}

// RecordPayment implements [Recorder].
func (r *recorder) RecordPayment(ctx context.Context, tempID string, payment models.PaymentRecord) (models.PendingSale, error) {
	if !payment.Amount.IsPositive() {
		return models.PendingSale{}, ErrInvalidPayment
	}
	if payment.PaidAt.IsZero() {
		payment.PaidAt = time.Now()
	}

	sale, err := r.sales.GetPendingSale(ctx, tempID)
	if err != nil {
		return models.PendingSale{}, fmt.Errorf("record payment: %w", err)
	}
	if sale.PaidAmount.Add(payment.Amount).GreaterThan(sale.TotalAmount) {
		return models.PendingSale{}, fmt.Errorf("%w: paid %s + %s, total %s",
			ErrOverpayment, sale.PaidAmount, payment.Amount, sale.TotalAmount)
	}

	paymentRef := r.ids.Generate()
	if _, err = r.sales.AppendPayment(ctx, tempID, paymentRef, payment); err != nil {
		r.logger.Err(err).Str("func", "RecordPayment").Str("temp_id", tempID).Msg("error storing payment locally")
		return models.PendingSale{}, fmt.Errorf("record payment: %w", err)
	}

	r.logger.Info().Str("temp_id", tempID).Str("payment_ref", paymentRef).
		Str("amount", payment.Amount.String()).Msg("payment recorded locally")

	return r.sales.GetPendingSale(ctx, tempID)
}

// GetSale implements [Recorder].
func (r *recorder) GetSale(ctx context.Context, tempID string) (models.PendingSale, error) {
	return r.sales.GetPendingSale(ctx, tempID)
}

// ListSales implements [Recorder].
func (r *recorder) ListSales(ctx context.Context) ([]models.PendingSale, error) {
	return r.sales.GetAllPendingSales(ctx)
}

// ListSalesByStatus implements [Recorder].
func (r *recorder) ListSalesByStatus(ctx context.Context, status models.SyncStatus) ([]models.PendingSale, error) {
	return r.sales.GetPendingSalesByStatus(ctx, status)
}

// UnsyncedCount implements [Recorder]. It counts sales still waiting for the
// server, in any state but synced.
func (r *recorder) UnsyncedCount(ctx context.Context) (int, error) {
	var total int
	for _, status := range []models.SyncStatus{models.SyncStatusPending, models.SyncStatusSyncing, models.SyncStatusFailed} {
		n, err := r.sales.CountByStatus(ctx, status)
		if err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}

func validateItems(items []models.SaleItem) error {
	if len(items) == 0 {
		return ErrEmptySale
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: product %d", ErrInvalidQuantity, item.ProductID)
		}
		if !item.UnitPrice.IsPositive() {
			return fmt.Errorf("%w: product %d", ErrInvalidUnitPrice, item.ProductID)
		}
	}

	return nil
}
