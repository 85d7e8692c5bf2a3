// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozerovd/go-sale-keeper/internal/config"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/models"
)

const testToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiIxIn0.signature"

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func testSaleRequest() models.SubmitSaleRequest {
	return models.SubmitSaleRequest{
		ClientRef:      "0190b2c3-0000-7000-8000-000000000001",
		CreatedAtLocal: time.Now().UTC(),
		Items: []models.SaleItemRequest{
			{ProductID: 10, Quantity: 2, UnitPrice: decimal.RequireFromString("45.50")},
		},
	}
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPServerAdapter_SchemeAdded(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", a.(*httpServerAdapter).client.BaseURL)
}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)

		w.Header().Set("Authorization", "Bearer "+testToken)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.RegisterRequest{Login: "kassir1", Password: "password123", Name: "Ivanov", Role: "cashier"})

	require.NoError(t, err)
	assert.Equal(t, testToken, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.RegisterRequest{Login: "kassir1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+testToken)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Login(context.Background(), models.LoginRequest{Login: "kassir1", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, testToken, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Login(context.Background(), models.LoginRequest{Login: "kassir1", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── SubmitSale ───────────────────────────────────────────────────────────────

func TestSubmitSale_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sales", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))

		var req models.SubmitSaleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SaleAck{ServerID: 42, ClientRef: req.ClientRef})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	ack, err := a.SubmitSale(context.Background(), testSaleRequest())

	require.NoError(t, err)
	assert.EqualValues(t, 42, ack.ServerID)
	assert.False(t, ack.Duplicate)
}

func TestSubmitSale_DuplicateAck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// сервер уже видел этот client_ref: возвращает исходный id
		_ = json.NewEncoder(w).Encode(models.SaleAck{ServerID: 42, ClientRef: "abc-1", Duplicate: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ack, err := a.SubmitSale(context.Background(), testSaleRequest())

	require.NoError(t, err)
	assert.True(t, ack.Duplicate)
	assert.EqualValues(t, 42, ack.ServerID)
}

func TestSubmitSale_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"stock_conflict"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SubmitSale(context.Background(), testSaleRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSaleRejected)
	assert.True(t, IsRejection(err))
}

func TestSubmitSale_ServerErrorIsNotRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SubmitSale(context.Background(), testSaleRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	// 5xx — временный сбой, продажа останется в очереди
	assert.False(t, IsRejection(err))
}

func TestSubmitSale_NetworkErrorIsNotRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // сервер недоступен

	a := newTestAdapter(t, srv.URL)
	_, err := a.SubmitSale(context.Background(), testSaleRequest())

	require.Error(t, err)
	assert.False(t, IsRejection(err))
}

// ── SubmitPayment ────────────────────────────────────────────────────────────

func TestSubmitPayment_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sales/abc-1/payments", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PaymentAck{PaymentID: 7})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ack, err := a.SubmitPayment(context.Background(), "abc-1", models.SubmitPaymentRequest{
		PaymentRef: "pay-ref-1",
		Payment:    models.SalePaymentRequest{Method: "cash", Amount: decimal.RequireFromString("50.00")},
	})

	require.NoError(t, err)
	assert.EqualValues(t, 7, ack.PaymentID)
}

// ── ListProducts / ListClients ───────────────────────────────────────────────

func TestListProducts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ProductListResponse{
			Products: []models.Product{{ID: 1, Name: "Flour 1kg", Price: decimal.RequireFromString("45.50")}},
			Total:    1,
			Limit:    100,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	page, err := a.ListProducts(context.Background(), 100, 0)

	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, 1, page.Total)
}

func TestListClients_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListClients(context.Background(), 100, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
