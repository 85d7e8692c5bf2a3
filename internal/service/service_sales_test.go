// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/store"
	"github.com/ozerovd/go-sale-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.SaleRepository
// ─────────────────────────────────────────────

type mockSaleRepository struct {
	createFn     func(ctx context.Context, sale models.Sale) (models.Sale, error)
	findFn       func(ctx context.Context, clientRef string) (models.Sale, error)
	addPaymentFn func(ctx context.Context, clientRef, paymentRef string, payment models.PaymentRecord) (int64, bool, error)
	listFn       func(ctx context.Context, filter models.SaleFilter) ([]models.Sale, models.SalesSummary, error)
	pruneFn      func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockSaleRepository) CreateSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	if m.createFn != nil {
		return m.createFn(ctx, sale)
	}
	return sale, nil
}

func (m *mockSaleRepository) FindSaleByClientRef(ctx context.Context, clientRef string) (models.Sale, error) {
	if m.findFn != nil {
		return m.findFn(ctx, clientRef)
	}
	return models.Sale{}, nil
}

func (m *mockSaleRepository) AddPayment(ctx context.Context, clientRef, paymentRef string, payment models.PaymentRecord) (int64, bool, error) {
	if m.addPaymentFn != nil {
		return m.addPaymentFn(ctx, clientRef, paymentRef, payment)
	}
	return 0, false, nil
}

func (m *mockSaleRepository) ListSales(ctx context.Context, filter models.SaleFilter) ([]models.Sale, models.SalesSummary, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, models.SalesSummary{}, nil
}

func (m *mockSaleRepository) PrunePaymentRefs(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.pruneFn != nil {
		return m.pruneFn(ctx, cutoff)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testClientRef = "d9428888-122b-11e1-b85c-61cd3cbb3210"

func newTestSalesService(repo *mockSaleRepository) SalesService {
	return NewSalesService(repo, logger.Nop())
}

func validSaleRequest() models.SubmitSaleRequest {
	return models.SubmitSaleRequest{
		ClientRef:      testClientRef,
		CreatedAtLocal: time.Now(),
		Items: []models.SaleItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("25.50")},
			{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("40.00")},
		},
		Payments: []models.SalePaymentRequest{
			{Method: "cash", Amount: decimal.RequireFromString("91.00")},
		},
	}
}

var errRepository = errors.New("repository error")

// ─────────────────────────────────────────────
// SubmitSale
// ─────────────────────────────────────────────

func TestSalesService_SubmitSale_Success(t *testing.T) {
	req := validSaleRequest()

	var stored models.Sale
	repo := &mockSaleRepository{
		createFn: func(_ context.Context, sale models.Sale) (models.Sale, error) {
			stored = sale
			sale.ID = 42
			return sale, nil
		},
	}
	svc := newTestSalesService(repo)

	ack, err := svc.SubmitSale(context.Background(), 7, req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), ack.ServerID)
	assert.Equal(t, testClientRef, ack.ClientRef)
	assert.False(t, ack.Duplicate)

	assert.Equal(t, int64(7), stored.CashierID)
	assert.Equal(t, models.SaleStatusCompleted, stored.Status)
	assert.Len(t, stored.Items, 2)

	// totals are recomputed server-side from the frozen item prices
	assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("91.00")),
		"expected total 91.00, got %s", stored.TotalAmount)
	assert.True(t, stored.PaidAmount.Equal(decimal.RequireFromString("91.00")),
		"expected paid 91.00, got %s", stored.PaidAmount)
}

func TestSalesService_SubmitSale_DuplicateRefAcknowledgesOriginal(t *testing.T) {
	repo := &mockSaleRepository{
		createFn: func(_ context.Context, _ models.Sale) (models.Sale, error) {
			return models.Sale{}, store.ErrDuplicateClientRef
		},
		findFn: func(_ context.Context, clientRef string) (models.Sale, error) {
			assert.Equal(t, testClientRef, clientRef)
			return models.Sale{ID: 42, ClientRef: clientRef}, nil
		},
	}
	svc := newTestSalesService(repo)

	ack, err := svc.SubmitSale(context.Background(), 7, validSaleRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), ack.ServerID)
	assert.True(t, ack.Duplicate)
}

func TestSalesService_SubmitSale_DuplicateLookupFails(t *testing.T) {
	repo := &mockSaleRepository{
		createFn: func(_ context.Context, _ models.Sale) (models.Sale, error) {
			return models.Sale{}, store.ErrDuplicateClientRef
		},
		findFn: func(_ context.Context, _ string) (models.Sale, error) {
			return models.Sale{}, errRepository
		},
	}
	svc := newTestSalesService(repo)

	_, err := svc.SubmitSale(context.Background(), 7, validSaleRequest())

	require.ErrorIs(t, err, errRepository)
}

func TestSalesService_SubmitSale_EmptyItems(t *testing.T) {
	req := validSaleRequest()
	req.Items = nil

	called := false
	repo := &mockSaleRepository{
		createFn: func(_ context.Context, sale models.Sale) (models.Sale, error) {
			called = true
			return sale, nil
		},
	}
	svc := newTestSalesService(repo)

	_, err := svc.SubmitSale(context.Background(), 7, req)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, called, "invalid submissions must never reach the repository")
}

func TestSalesService_SubmitSale_BadClientRef(t *testing.T) {
	req := validSaleRequest()
	req.ClientRef = "not-a-uuid"

	svc := newTestSalesService(&mockSaleRepository{})

	_, err := svc.SubmitSale(context.Background(), 7, req)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSalesService_SubmitSale_InsufficientStock(t *testing.T) {
	repo := &mockSaleRepository{
		createFn: func(_ context.Context, _ models.Sale) (models.Sale, error) {
			return models.Sale{}, store.ErrInsufficientStock
		},
	}
	svc := newTestSalesService(repo)

	_, err := svc.SubmitSale(context.Background(), 7, validSaleRequest())

	require.ErrorIs(t, err, store.ErrInsufficientStock)
}

// ─────────────────────────────────────────────
// AddPayment
// ─────────────────────────────────────────────

const testPaymentRef = "3b241101-e2bb-4255-8caf-4136c566a962"

func validPaymentRequest() models.SubmitPaymentRequest {
	return models.SubmitPaymentRequest{
		PaymentRef: testPaymentRef,
		Payment: models.SalePaymentRequest{
			Method: "card",
			Amount: decimal.RequireFromString("50.00"),
		},
	}
}

func TestSalesService_AddPayment_Success(t *testing.T) {
	repo := &mockSaleRepository{
		addPaymentFn: func(_ context.Context, clientRef, paymentRef string, payment models.PaymentRecord) (int64, bool, error) {
			assert.Equal(t, testClientRef, clientRef)
			assert.Equal(t, testPaymentRef, paymentRef)
			assert.Equal(t, "card", payment.Method)
			return 11, false, nil
		},
	}
	svc := newTestSalesService(repo)

	ack, err := svc.AddPayment(context.Background(), testClientRef, validPaymentRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(11), ack.PaymentID)
	assert.False(t, ack.Duplicate)
}

func TestSalesService_AddPayment_ReplayedRefIsDuplicate(t *testing.T) {
	repo := &mockSaleRepository{
		addPaymentFn: func(_ context.Context, _, _ string, _ models.PaymentRecord) (int64, bool, error) {
			return 11, true, nil
		},
	}
	svc := newTestSalesService(repo)

	ack, err := svc.AddPayment(context.Background(), testClientRef, validPaymentRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(11), ack.PaymentID)
	assert.True(t, ack.Duplicate)
}

func TestSalesService_AddPayment_BadPaymentRef(t *testing.T) {
	req := validPaymentRequest()
	req.PaymentRef = "not-a-uuid"

	svc := newTestSalesService(&mockSaleRepository{})

	_, err := svc.AddPayment(context.Background(), testClientRef, req)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSalesService_AddPayment_RepositoryError(t *testing.T) {
	repo := &mockSaleRepository{
		addPaymentFn: func(_ context.Context, _, _ string, _ models.PaymentRecord) (int64, bool, error) {
			return 0, false, store.ErrSaleNotFound
		},
	}
	svc := newTestSalesService(repo)

	_, err := svc.AddPayment(context.Background(), testClientRef, validPaymentRequest())

	require.ErrorIs(t, err, store.ErrSaleNotFound)
}

// ─────────────────────────────────────────────
// ListSales
// ─────────────────────────────────────────────

func TestSalesService_ListSales_Success(t *testing.T) {
	filter := models.SaleFilter{Status: models.SaleStatusCompleted, Limit: 10}
	expected := []models.Sale{{ID: 42}}
	summary := models.SalesSummary{Count: 1, TotalAmount: decimal.RequireFromString("91.00")}

	repo := &mockSaleRepository{
		listFn: func(_ context.Context, f models.SaleFilter) ([]models.Sale, models.SalesSummary, error) {
			assert.Equal(t, filter, f)
			return expected, summary, nil
		},
	}
	svc := newTestSalesService(repo)

	resp, err := svc.ListSales(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, expected, resp.Sales)
	assert.Equal(t, summary, resp.Summary)
}

func TestSalesService_ListSales_RepositoryError(t *testing.T) {
	repo := &mockSaleRepository{
		listFn: func(_ context.Context, _ models.SaleFilter) ([]models.Sale, models.SalesSummary, error) {
			return nil, models.SalesSummary{}, errRepository
		},
	}
	svc := newTestSalesService(repo)

	_, err := svc.ListSales(context.Background(), models.SaleFilter{})

	require.ErrorIs(t, err, errRepository)
}
