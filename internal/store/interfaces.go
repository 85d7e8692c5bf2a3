// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/ozerovd/go-sale-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists operator accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// SaleRepository persists sales submitted by the terminals.
type SaleRepository interface {
	// CreateSale commits a sale, its items and its initial payments in one
	// transaction, taking stock atomically. Returns [ErrDuplicateClientRef]
	// when the client ref was committed before, and [ErrInsufficientStock]
	// when another sale already took the stock.
	CreateSale(ctx context.Context, sale models.Sale) (models.Sale, error)

	// FindSaleByClientRef loads a sale with its items and payments.
	FindSaleByClientRef(ctx context.Context, clientRef string) (models.Sale, error)

	// AddPayment records one payment against the sale identified by
	// clientRef. When paymentRef was already recorded the existing payment id
	// is returned with duplicate set, and nothing is double-booked.
	AddPayment(ctx context.Context, clientRef, paymentRef string, payment models.PaymentRecord) (paymentID int64, duplicate bool, err error)

	// ListSales returns a filtered listing together with its aggregate
	// summary.
	ListSales(ctx context.Context, filter models.SaleFilter) ([]models.Sale, models.SalesSummary, error)

	// PrunePaymentRefs clears payment idempotency keys older than the cutoff
	// and reports how many were released.
	PrunePaymentRefs(ctx context.Context, cutoff time.Time) (int64, error)
}

// CatalogRepository serves the bulk catalog listings the terminals cache.
type CatalogRepository interface {
	ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int, error)
	ListClients(ctx context.Context, limit, offset int) ([]models.Client, int, error)
}
