// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ozerovd/go-sale-keeper/internal/adapter"
	"github.com/ozerovd/go-sale-keeper/internal/localstore"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/models"
)

type synchronizer struct {
	sales    localstore.PendingSales
	queue    localstore.SyncQueue
	server   adapter.ServerAdapter
	notifier Notifier
	logger   *logger.Logger

	running atomic.Bool
}

// NewSynchronizer builds the queue-draining synchronizer.
func NewSynchronizer(sales localstore.PendingSales, queue localstore.SyncQueue, server adapter.ServerAdapter, notifier Notifier, log *logger.Logger) Synchronizer {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &synchronizer{
		sales:    sales,
		queue:    queue,
		server:   server,
		notifier: notifier,
		logger:   log.GetChildLogger(),
	}
}

// SyncNow implements [Synchronizer]. Entries are replayed strictly in queue
// order; the run stops at the first entry that cannot be submitted so that a
// later sale never reaches the server before an earlier one. A rejected sale
// keeps its queue entry and is marked failed for the operator; a transport
// failure leaves everything as it was and the next run retries.
func (s *synchronizer) SyncNow(ctx context.Context) (models.SyncReport, error) {
	if !s.running.CompareAndSwap(false, true) {
		return models.SyncReport{}, ErrSyncInProgress
	}
	defer s.running.Store(false)

	report := models.SyncReport{}

	// restore queue entries for sales orphaned by a crash between writes
	if _, repairErr := s.queue.ReenqueueOrphans(ctx); repairErr != nil {
		s.logger.Err(repairErr).Str("func", "SyncNow").Msg("error repairing sync queue before run")
	}

	entries, err := s.queue.GetAllInOrder(ctx)
	if err != nil {
		return report, fmt.Errorf("read sync queue: %w", err)
	}

	var runErr error
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			runErr = err
			break
		}

		switch entry.Action {
		case models.ActionCreateSale:
			err = s.submitSale(ctx, entry)
		case models.ActionRecordPayment:
			err = s.submitPayment(ctx, entry)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownQueueAction, entry.Action)
		}

		if err != nil {
			report.Failed = true
			report.LastError = err.Error()
			runErr = err
			break
		}

		report.Submitted++
	}

	remaining, countErr := s.queue.Count(ctx)
	if countErr != nil {
		s.logger.Err(countErr).Str("func", "SyncNow").Msg("error counting queue after sync run")
	}
	report.Remaining = remaining
	report.FinishedAt = time.Now()

	s.logger.Info().Int("submitted", report.Submitted).Int("remaining", report.Remaining).
		Bool("failed", report.Failed).Msg("sync run finished")

	if runErr != nil {
		s.notifier.SyncError(runErr)
	}
	s.notifier.SyncFinished(report)

	return report, runErr
}

// submitSale replays one create_sale entry. A duplicate acknowledgment from
// the server is a success: it means the previous submission committed but the
// ack was lost.
func (s *synchronizer) submitSale(ctx context.Context, entry models.SyncQueueEntry) error {
	var payload models.CreateSalePayload
	if err := json.Unmarshal(entry.Payload, &payload); err != nil {
		return fmt.Errorf("decode create_sale payload: %w", err)
	}

	sale, err := s.sales.GetPendingSale(ctx, payload.TempID)
	if errors.Is(err, localstore.ErrPendingSaleNotFound) {
		// stale entry with no sale behind it, nothing to submit
		s.logger.Warn().Str("temp_id", payload.TempID).Msg("dropping queue entry for missing sale")
		return s.queue.Remove(ctx, entry.ID)
	}
	if err != nil {
		return fmt.Errorf("load sale %s: %w", payload.TempID, err)
	}

	if sale.SyncStatus == models.SyncStatusSynced {
		// already confirmed by an earlier run, the entry just outlived it
		return s.queue.Remove(ctx, entry.ID)
	}

	if err = s.sales.SetSyncStatus(ctx, sale.TempID, models.SyncStatusSyncing, ""); err != nil {
		return fmt.Errorf("mark sale syncing: %w", err)
	}

	ack, err := s.server.SubmitSale(ctx, buildSaleRequest(sale))
	if err != nil {
		return s.handleSubmitError(ctx, sale.TempID, err)
	}

	if err = s.sales.MarkSynced(ctx, sale.TempID, ack.ServerID); err != nil {
		return fmt.Errorf("mark sale synced: %w", err)
	}
	if err = s.queue.Remove(ctx, entry.ID); err != nil {
		return fmt.Errorf("remove queue entry: %w", err)
	}

	s.logger.Info().Str("temp_id", sale.TempID).Int64("server_id", ack.ServerID).
		Bool("duplicate", ack.Duplicate).Msg("sale synced")

	return nil
}

// submitPayment replays one record_payment entry. The FIFO order guarantees
// the sale's create_sale entry was submitted first, so the server already
// knows the client ref.
func (s *synchronizer) submitPayment(ctx context.Context, entry models.SyncQueueEntry) error {
	var payload models.RecordPaymentPayload
	if err := json.Unmarshal(entry.Payload, &payload); err != nil {
		return fmt.Errorf("decode record_payment payload: %w", err)
	}

	req := models.SubmitPaymentRequest{
		PaymentRef: payload.PaymentRef,
		Payment: models.SalePaymentRequest{
			Method:          payload.Payment.Method,
			Amount:          payload.Payment.Amount,
			ReferenceNumber: payload.Payment.ReferenceNumber,
		},
	}

	ack, err := s.server.SubmitPayment(ctx, payload.SaleTempID, req)
	if err != nil {
		return s.handleSubmitError(ctx, payload.SaleTempID, err)
	}

	if err = s.queue.Remove(ctx, entry.ID); err != nil {
		return fmt.Errorf("remove queue entry: %w", err)
	}

	s.logger.Info().Str("temp_id", payload.SaleTempID).Str("payment_ref", payload.PaymentRef).
		Bool("duplicate", ack.Duplicate).Msg("payment synced")

	return nil
}

// handleSubmitError classifies a submission failure. Rejections flip the sale
// to failed so the operator sees it; transient failures put it back to
// pending for the next run. The queue entry stays either way.
func (s *synchronizer) handleSubmitError(ctx context.Context, tempID string, submitErr error) error {
	if adapter.IsRejection(submitErr) {
		if err := s.sales.SetSyncStatus(ctx, tempID, models.SyncStatusFailed, submitErr.Error()); err != nil {
			s.logger.Err(err).Str("temp_id", tempID).Msg("error marking sale failed")
		}
		s.logger.Warn().Str("temp_id", tempID).Err(submitErr).Msg("server rejected submission")
		return fmt.Errorf("sale %s rejected: %w", tempID, submitErr)
	}

	if err := s.sales.SetSyncStatus(ctx, tempID, models.SyncStatusPending, ""); err != nil {
		s.logger.Err(err).Str("temp_id", tempID).Msg("error reverting sale to pending")
	}
	s.logger.Warn().Str("temp_id", tempID).Err(submitErr).Msg("submission failed, will retry next run")

	return fmt.Errorf("submit %s: %w", tempID, submitErr)
}

// ResolveEntry implements [Synchronizer].
func (s *synchronizer) ResolveEntry(ctx context.Context, entryID int64) error {
	if err := s.queue.Remove(ctx, entryID); err != nil {
		return fmt.Errorf("resolve queue entry: %w", err)
	}

	s.logger.Warn().Int64("queue_id", entryID).Msg("queue entry resolved manually by operator")
	return nil
}

// RepairQueue implements [Synchronizer].
func (s *synchronizer) RepairQueue(ctx context.Context) (int, error) {
	restored, err := s.queue.ReenqueueOrphans(ctx)
	if err != nil {
		return 0, fmt.Errorf("repair sync queue: %w", err)
	}
	if restored > 0 {
		s.logger.Warn().Int("restored", restored).Msg("restored queue entries for orphaned sales")
	}

	return restored, nil
}

// QueueLength implements [Synchronizer].
func (s *synchronizer) QueueLength(ctx context.Context) (int, error) {
	return s.queue.Count(ctx)
}

func buildSaleRequest(sale models.PendingSale) models.SubmitSaleRequest {
	items := make([]models.SaleItemRequest, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, models.SaleItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			BatchID:   item.BatchID,
		})
	}

	payments := make([]models.SalePaymentRequest, 0, len(sale.Payments))
	for _, p := range sale.Payments {
		payments = append(payments, models.SalePaymentRequest{
			Method:          p.Method,
			Amount:          p.Amount,
			ReferenceNumber: p.ReferenceNumber,
		})
	}

	return models.SubmitSaleRequest{
		ClientRef:      sale.TempID,
		CreatedAtLocal: sale.CreatedAtLocal,
		Items:          items,
		Payments:       payments,
	}
}
