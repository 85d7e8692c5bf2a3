// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/shopspring/decimal"

	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/models"
)

func newTestSaleRepo(t *testing.T) (*saleRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &saleRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func storeSale() models.Sale {
	return models.Sale{
		ClientRef:      "0190b2c3-0000-7000-8000-000000000001",
		CashierID:      1,
		TotalAmount:    decimal.RequireFromString("91.00"),
		PaidAmount:     decimal.RequireFromString("91.00"),
		Status:         "completed",
		CreatedAtLocal: time.Now().UTC(),
		Items: []models.SaleItem{
			{ProductID: 10, Quantity: 2, UnitPrice: decimal.RequireFromString("45.50")},
		},
		Payments: []models.PaymentRecord{
			{Method: "cash", Amount: decimal.RequireFromString("91.00"), PaidAt: time.Now()},
		},
	}
}

// ── CreateSale ───────────────────────────────────────────────────────────────

func TestCreateSale_Success(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	sale := storeSale()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sales").
		WithArgs(sale.ClientRef, sale.CashierID, sale.TotalAmount, sale.PaidAmount, sale.Status, sale.CreatedAtLocal).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, now))
	mock.ExpectExec("UPDATE products").
		WithArgs(int64(10), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sale_items").
		WithArgs(int64(42), int64(10), int64(2), sale.Items[0].UnitPrice, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("INSERT INTO sale_payments").
		WithArgs(int64(42), nil, "cash", sale.Payments[0].Amount, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	created, err := repo.CreateSale(context.Background(), sale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 42 {
		t.Errorf("expected ID=42, got %d", created.ID)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateSale_DuplicateClientRef(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sales").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateSale(context.Background(), storeSale())
	if !errors.Is(err, ErrDuplicateClientRef) {
		t.Fatalf("expected ErrDuplicateClientRef, got %v", err)
	}
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	sale := storeSale()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sales").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, now))
	// остатка не хватило: ноль затронутых строк
	mock.ExpectExec("UPDATE products").
		WithArgs(int64(10), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.CreateSale(context.Background(), sale)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestCreateSale_UnknownProduct(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sales").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, time.Now()))
	mock.ExpectExec("UPDATE products").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := repo.CreateSale(context.Background(), storeSale())
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

// ── AddPayment ───────────────────────────────────────────────────────────────

func TestAddPayment_Success(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	amount := decimal.RequireFromString("50.00")

	mock.ExpectQuery("SELECT id FROM sales").
		WithArgs("abc-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sale_payments").
		WithArgs(int64(42), "pay-ref-1", "cash", amount, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec("UPDATE sales SET paid_amount").
		WithArgs(int64(42), amount).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	paymentID, duplicate, err := repo.AddPayment(context.Background(), "abc-1", "pay-ref-1",
		models.PaymentRecord{Method: "cash", Amount: amount, PaidAt: time.Now()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if duplicate {
		t.Error("expected duplicate=false")
	}
	if paymentID != 7 {
		t.Errorf("expected paymentID=7, got %d", paymentID)
	}
}

func TestAddPayment_DuplicateRefReturnsExisting(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM sales").
		WithArgs("abc-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectBegin()
	// повторная отправка того же платежа: ключ идемпотентности уже занят
	mock.ExpectQuery("INSERT INTO sale_payments").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectQuery("SELECT id FROM sale_payments").
		WithArgs("pay-ref-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectRollback()

	paymentID, duplicate, err := repo.AddPayment(context.Background(), "abc-1", "pay-ref-1",
		models.PaymentRecord{Method: "cash", Amount: decimal.RequireFromString("50.00")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !duplicate {
		t.Error("expected duplicate=true")
	}
	if paymentID != 7 {
		t.Errorf("expected existing paymentID=7, got %d", paymentID)
	}
}

func TestAddPayment_SaleNotFound(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM sales").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, _, err := repo.AddPayment(context.Background(), "ghost", "pay-ref-1",
		models.PaymentRecord{Method: "cash", Amount: decimal.RequireFromString("50.00")})
	if !errors.Is(err, ErrSaleNotFound) {
		t.Fatalf("expected ErrSaleNotFound, got %v", err)
	}
}

// ── FindSaleByClientRef ──────────────────────────────────────────────────────

func TestFindSaleByClientRef_Success(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM sales").
		WithArgs("abc-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_ref", "cashier_id", "total_amount", "paid_amount", "status", "created_at_local", "created_at"}).
			AddRow(42, "abc-1", 1, "91.00", "91.00", "completed", now, now))
	mock.ExpectQuery("SELECT (.+) FROM sale_items").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "quantity", "unit_price", "batch_id"}).
			AddRow(10, "Flour 1kg", 2, "45.50", nil))
	mock.ExpectQuery("SELECT (.+) FROM sale_payments").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"method", "amount", "paid_at", "reference_number"}).
			AddRow("cash", "91.00", now, nil))

	sale, err := repo.FindSaleByClientRef(context.Background(), "abc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sale.ID != 42 {
		t.Errorf("expected ID=42, got %d", sale.ID)
	}
	if len(sale.Items) != 1 || sale.Items[0].ProductName != "Flour 1kg" {
		t.Errorf("unexpected items: %+v", sale.Items)
	}
	if len(sale.Payments) != 1 {
		t.Errorf("expected 1 payment, got %d", len(sale.Payments))
	}
}

func TestFindSaleByClientRef_NotFound(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sales").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindSaleByClientRef(context.Background(), "ghost")
	if !errors.Is(err, ErrSaleNotFound) {
		t.Fatalf("expected ErrSaleNotFound, got %v", err)
	}
}

// ── ListSales ────────────────────────────────────────────────────────────────

func TestListSales_WithFilter(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	now := time.Now()
	from := now.Add(-24 * time.Hour)

	mock.ExpectQuery("SELECT (.+) FROM sales WHERE").
		WithArgs(from, "completed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_ref", "cashier_id", "total_amount", "paid_amount", "status", "created_at_local", "created_at"}).
			AddRow(42, "abc-1", 1, "91.00", "91.00", "completed", now, now))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(from, "completed").
		WillReturnRows(sqlmock.NewRows([]string{"count", "total", "paid"}).AddRow(1, "91.00", "91.00"))

	sales, summary, err := repo.ListSales(context.Background(), models.SaleFilter{
		From:   &from,
		Status: "completed",
		Limit:  50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("expected 1 sale, got %d", len(sales))
	}
	if summary.Count != 1 {
		t.Errorf("expected summary count 1, got %d", summary.Count)
	}
	if !summary.TotalAmount.Equal(decimal.RequireFromString("91.00")) {
		t.Errorf("unexpected summary total: %s", summary.TotalAmount)
	}
}

// ── PrunePaymentRefs ─────────────────────────────────────────────────────────

func TestPrunePaymentRefs(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	cutoff := time.Now().Add(-30 * 24 * time.Hour)

	mock.ExpectExec("UPDATE sale_payments").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	pruned, err := repo.PrunePaymentRefs(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pruned != 3 {
		t.Errorf("expected 3 pruned refs, got %d", pruned)
	}
}
