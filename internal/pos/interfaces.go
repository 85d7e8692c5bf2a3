// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pos implements the terminal-side services: recording sales while
// offline, replaying them to the server in order, and keeping the local
// catalog caches fresh.
package pos

import (
	"context"
	"time"

	"github.com/ozerovd/go-sale-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/pos_mock.go -package=mock

// Recorder records sales and payments at the till. Every write lands in the
// local store first and never waits for the network.
type Recorder interface {
	// RecordSale validates the cart, assigns a temp id, computes totals and
	// stores the sale together with its sync queue entry. It succeeds or
	// fails entirely on local storage; the server is not involved.
	RecordSale(ctx context.Context, items []models.SaleItem, payments []models.PaymentRecord) (models.PendingSale, error)

	// RecordPayment adds a payment to an already recorded sale and queues it
	// for submission under its own idempotency key.
	RecordPayment(ctx context.Context, tempID string, payment models.PaymentRecord) (models.PendingSale, error)

	GetSale(ctx context.Context, tempID string) (models.PendingSale, error)
	ListSales(ctx context.Context) ([]models.PendingSale, error)
	ListSalesByStatus(ctx context.Context, status models.SyncStatus) ([]models.PendingSale, error)
	UnsyncedCount(ctx context.Context) (int, error)
}

// Synchronizer replays the local sync queue against the server.
type Synchronizer interface {
	// SyncNow drains the queue in FIFO order, stopping at the first entry
	// that cannot be submitted. Only one run may be active at a time;
	// concurrent calls get [ErrSyncInProgress].
	SyncNow(ctx context.Context) (models.SyncReport, error)

	// ResolveEntry removes one queue entry without submitting it. This is
	// the operator's escape hatch for a sale the server keeps rejecting; the
	// sale itself stays in the local store, marked failed.
	ResolveEntry(ctx context.Context, entryID int64) error

	// RepairQueue re-enqueues unsynced sales that lost their queue entry to
	// a crash. Every sync run performs the same sweep before draining.
	RepairQueue(ctx context.Context) (int, error)

	QueueLength(ctx context.Context) (int, error)
}

// CacheRefresher repopulates the local catalog caches from the server.
type CacheRefresher interface {
	// RefreshCaches downloads the full product catalog and client directory
	// page by page, then replaces both caches. The caches are only cleared
	// after every page has been fetched, so a mid-download failure leaves
	// the old cache intact.
	RefreshCaches(ctx context.Context) (models.CacheRefreshStats, error)
}

// SyncJob runs the synchronizer periodically in the background.
type SyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
