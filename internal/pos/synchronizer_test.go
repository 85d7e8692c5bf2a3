// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ozerovd/go-sale-keeper/internal/adapter"
	"github.com/ozerovd/go-sale-keeper/internal/localstore"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/mock"
	"github.com/ozerovd/go-sale-keeper/models"
)

// newTestSynchronizer — хелпер для создания synchronizer с моками
func newTestSynchronizer(t *testing.T, ctrl *gomock.Controller) (*synchronizer, *mock.MockPendingSales, *mock.MockSyncQueue, *mock.MockServerAdapter, *recordedNotifier) {
	t.Helper()

	sales := mock.NewMockPendingSales(ctrl)
	queue := mock.NewMockSyncQueue(ctrl)
	server := mock.NewMockServerAdapter(ctrl)
	notifier := &recordedNotifier{}

	s := NewSynchronizer(sales, queue, server, notifier, logger.Nop()).(*synchronizer)
	return s, sales, queue, server, notifier
}

func createSaleEntry(id int64, tempID string) models.SyncQueueEntry {
	payload, _ := json.Marshal(models.CreateSalePayload{TempID: tempID})
	return models.SyncQueueEntry{ID: id, Action: models.ActionCreateSale, SaleRef: tempID, Payload: payload}
}

func paymentEntry(id int64, tempID, paymentRef string) models.SyncQueueEntry {
	payload, _ := json.Marshal(models.RecordPaymentPayload{
		SaleTempID: tempID,
		PaymentRef: paymentRef,
		Payment:    models.PaymentRecord{Method: "cash", Amount: decimal.RequireFromString("50.00")},
	})
	return models.SyncQueueEntry{ID: id, Action: models.ActionRecordPayment, SaleRef: tempID, Payload: payload}
}

func pendingSale(tempID string) models.PendingSale {
	return models.PendingSale{
		TempID:      tempID,
		Items:       []models.SaleItem{{ProductID: 10, Quantity: 1, UnitPrice: decimal.RequireFromString("45.50")}},
		TotalAmount: decimal.RequireFromString("45.50"),
		PaidAmount:  decimal.Zero,
		SyncStatus:  models.SyncStatusPending,
	}
}

// ── SyncNow: happy path ──────────────────────────────────────────────────────

func TestSyncNow_SubmitsEntriesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, sales, queue, server, notifier := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	queue.EXPECT().ReenqueueOrphans(ctx).Return(0, nil)
	queue.EXPECT().GetAllInOrder(ctx).Return([]models.SyncQueueEntry{
		createSaleEntry(1, "abc-1"),
		createSaleEntry(2, "abc-2"),
	}, nil)

	gomock.InOrder(
		sales.EXPECT().GetPendingSale(ctx, "abc-1").Return(pendingSale("abc-1"), nil),
		sales.EXPECT().SetSyncStatus(ctx, "abc-1", models.SyncStatusSyncing, "").Return(nil),
		server.EXPECT().SubmitSale(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.SubmitSaleRequest) (models.SaleAck, error) {
				assert.Equal(t, "abc-1", req.ClientRef)
				return models.SaleAck{ServerID: 42, ClientRef: "abc-1"}, nil
			}),
		sales.EXPECT().MarkSynced(ctx, "abc-1", int64(42)).Return(nil),
		queue.EXPECT().Remove(ctx, int64(1)).Return(nil),

		sales.EXPECT().GetPendingSale(ctx, "abc-2").Return(pendingSale("abc-2"), nil),
		sales.EXPECT().SetSyncStatus(ctx, "abc-2", models.SyncStatusSyncing, "").Return(nil),
		server.EXPECT().SubmitSale(ctx, gomock.Any()).Return(models.SaleAck{ServerID: 43, ClientRef: "abc-2"}, nil),
		sales.EXPECT().MarkSynced(ctx, "abc-2", int64(43)).Return(nil),
		queue.EXPECT().Remove(ctx, int64(2)).Return(nil),
	)

	queue.EXPECT().Count(ctx).Return(0, nil)

	report, err := s.SyncNow(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Submitted)
	assert.Zero(t, report.Remaining)
	assert.False(t, report.Failed)
	require.Len(t, notifier.reports, 1)
	assert.Empty(t, notifier.errs)
}

func TestSyncNow_EmptyQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, queue, _, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	queue.EXPECT().ReenqueueOrphans(ctx).Return(0, nil)
	queue.EXPECT().GetAllInOrder(ctx).Return(nil, nil)
	queue.EXPECT().Count(ctx).Return(0, nil)

	report, err := s.SyncNow(ctx)

	require.NoError(t, err)
	assert.Zero(t, report.Submitted)
}

// ── SyncNow: идемпотентность ─────────────────────────────────────────────────

func TestSyncNow_DuplicateAckIsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, sales, queue, server, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	queue.EXPECT().ReenqueueOrphans(ctx).Return(0, nil)
	queue.EXPECT().GetAllInOrder(ctx).Return([]models.SyncQueueEntry{createSaleEntry(1, "abc-1")}, nil)

	// сценарий потерянного подтверждения: сервер уже сохранил продажу
	gomock.InOrder(
		sales.EXPECT().GetPendingSale(ctx, "abc-1").Return(pendingSale("abc-1"), nil),
		sales.EXPECT().SetSyncStatus(ctx, "abc-1", models.SyncStatusSyncing, "").Return(nil),
		server.EXPECT().SubmitSale(ctx, gomock.Any()).
			Return(models.SaleAck{ServerID: 42, ClientRef: "abc-1", Duplicate: true}, nil),
		sales.EXPECT().MarkSynced(ctx, "abc-1", int64(42)).Return(nil),
		queue.EXPECT().Remove(ctx, int64(1)).Return(nil),
	)
	queue.EXPECT().Count(ctx).Return(0, nil)

	report, err := s.SyncNow(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Submitted)
}

func TestSyncNow_AlreadySyncedSaleSkipsSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, sales, queue, _, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	synced := pendingSale("abc-1")
	synced.SyncStatus = models.SyncStatusSynced

	queue.EXPECT().ReenqueueOrphans(ctx).Return(0, nil)
	queue.EXPECT().GetAllInOrder(ctx).Return([]models.SyncQueueEntry{createSaleEntry(1, "abc-1")}, nil)
	sales.EXPECT().GetPendingSale(ctx, "abc-1").Return(synced, nil)
	queue.EXPECT().Remove(ctx, int64(1)).Return(nil)
	queue.EXPECT().Count(ctx).Return(0, nil)

	report, err := s.SyncNow(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Submitted)
}

func TestSyncNow_MissingSaleDropsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, sales, queue, _, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	queue.EXPECT().ReenqueueOrphans(ctx).Return(0, nil)
	queue.EXPECT().GetAllInOrder(ctx).Return([]models.SyncQueueEntry{createSaleEntry(1, "ghost")}, nil)
	sales.EXPECT().GetPendingSale(ctx, "ghost").Return(models.PendingSale{}, localstore.ErrPendingSaleNotFound)
	queue.EXPECT().Remove(ctx, int64(1)).Return(nil)
	queue.EXPECT().Count(ctx).Return(0, nil)

	_, err := s.SyncNow(ctx)
	require.NoError(t, err)
}

// ── SyncNow: остановка на первой ошибке ──────────────────────────────────────

func TestSyncNow_RejectionStopsRunAndMarksFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, sales, queue, server, notifier := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	// вторая запись не должна быть отправлена: порядок строго FIFO
	queue.EXPECT().ReenqueueOrphans(ctx).Return(0, nil)
	queue.EXPECT().GetAllInOrder(ctx).Return([]models.SyncQueueEntry{
		createSaleEntry(1, "abc-1"),
		createSaleEntry(2, "abc-2"),
	}, nil)

	rejection := fmt.Errorf("%w: stock_conflict", adapter.ErrSaleRejected)
	gomock.InOrder(
		sales.EXPECT().GetPendingSale(ctx, "abc-1").Return(pendingSale("abc-1"), nil),
		sales.EXPECT().SetSyncStatus(ctx, "abc-1", models.SyncStatusSyncing, "").Return(nil),
		server.EXPECT().SubmitSale(ctx, gomock.Any()).Return(models.SaleAck{}, rejection),
		sales.EXPECT().SetSyncStatus(ctx, "abc-1", models.SyncStatusFailed, rejection.Error()).Return(nil),
	)
	queue.EXPECT().Count(ctx).Return(2, nil)

	report, err := s.SyncNow(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrSaleRejected)
	assert.True(t, report.Failed)
	assert.Zero(t, report.Submitted)
	assert.Equal(t, 2, report.Remaining)
	require.Len(t, notifier.errs, 1)
}

func TestSyncNow_TransientErrorRevertsToPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, sales, queue, server, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	queue.EXPECT().ReenqueueOrphans(ctx).Return(0, nil)
	queue.EXPECT().GetAllInOrder(ctx).Return([]models.SyncQueueEntry{createSaleEntry(1, "abc-1")}, nil)

	netErr := errors.New("dial tcp: connection refused")
	gomock.InOrder(
		sales.EXPECT().GetPendingSale(ctx, "abc-1").Return(pendingSale("abc-1"), nil),
		sales.EXPECT().SetSyncStatus(ctx, "abc-1", models.SyncStatusSyncing, "").Return(nil),
		server.EXPECT().SubmitSale(ctx, gomock.Any()).Return(models.SaleAck{}, netErr),
		// продажа возвращается в pending и будет отправлена в следующем цикле
		sales.EXPECT().SetSyncStatus(ctx, "abc-1", models.SyncStatusPending, "").Return(nil),
	)
	queue.EXPECT().Count(ctx).Return(1, nil)

	report, err := s.SyncNow(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, netErr)
	assert.Equal(t, 1, report.Remaining)
}

// ── SyncNow: платежи ─────────────────────────────────────────────────────────

func TestSyncNow_SubmitsPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, queue, server, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	queue.EXPECT().ReenqueueOrphans(ctx).Return(0, nil)
	queue.EXPECT().GetAllInOrder(ctx).Return([]models.SyncQueueEntry{paymentEntry(3, "abc-1", "pay-ref-1")}, nil)

	gomock.InOrder(
		server.EXPECT().SubmitPayment(ctx, "abc-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req models.SubmitPaymentRequest) (models.PaymentAck, error) {
				assert.Equal(t, "pay-ref-1", req.PaymentRef)
				return models.PaymentAck{PaymentID: 7}, nil
			}),
		queue.EXPECT().Remove(ctx, int64(3)).Return(nil),
	)
	queue.EXPECT().Count(ctx).Return(0, nil)

	report, err := s.SyncNow(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Submitted)
}

// ── SyncNow: защита от повторного входа ──────────────────────────────────────

func TestSyncNow_ConcurrentRunRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, _, _, _ := newTestSynchronizer(t, ctrl)

	// имитация уже идущего цикла
	s.running.Store(true)

	_, err := s.SyncNow(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)
}

func TestSyncNow_GuardReleasedAfterRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, queue, _, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	queue.EXPECT().ReenqueueOrphans(ctx).Return(0, nil).Times(2)
	queue.EXPECT().GetAllInOrder(ctx).Return(nil, nil).Times(2)
	queue.EXPECT().Count(ctx).Return(0, nil).Times(2)

	_, err := s.SyncNow(ctx)
	require.NoError(t, err)

	// после завершения цикла новый запуск разрешён
	_, err = s.SyncNow(ctx)
	require.NoError(t, err)
}

// ── SyncNow: неизвестное действие ────────────────────────────────────────────

func TestSyncNow_UnknownActionStopsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, queue, _, _ := newTestSynchronizer(t, ctrl)
	ctx := context.Background()

	queue.EXPECT().ReenqueueOrphans(ctx).Return(0, nil)
	queue.EXPECT().GetAllInOrder(ctx).Return([]models.SyncQueueEntry{
		{ID: 1, Action: "teleport_sale", SaleRef: "abc-1", Payload: json.RawMessage(`{}`)},
	}, nil)
	queue.EXPECT().Count(ctx).Return(1, nil)

	_, err := s.SyncNow(ctx)
	assert.ErrorIs(t, err, ErrUnknownQueueAction)
}

// ── ResolveEntry / RepairQueue ───────────────────────────────────────────────

func TestResolveEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, queue, _, _ := newTestSynchronizer(t, ctrl)

	queue.EXPECT().Remove(gomock.Any(), int64(5)).Return(nil)
	require.NoError(t, s.ResolveEntry(context.Background(), 5))

	queue.EXPECT().Remove(gomock.Any(), int64(6)).Return(localstore.ErrQueueEntryNotFound)
	assert.ErrorIs(t, s.ResolveEntry(context.Background(), 6), localstore.ErrQueueEntryNotFound)
}

func TestRepairQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, queue, _, _ := newTestSynchronizer(t, ctrl)

	queue.EXPECT().ReenqueueOrphans(gomock.Any()).Return(2, nil)

	restored, err := s.RepairQueue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, restored)
}
