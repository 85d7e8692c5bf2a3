// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package localstore

import (
	"context"
	"encoding/json"

	"github.com/ozerovd/go-sale-keeper/models"
)

//go:generate mockgen -destination=../mock/mock_localstore.go -package=mock github.com/ozerovd/go-sale-keeper/internal/localstore PendingSales,SyncQueue,Cache

// PendingSales persists offline sales on the terminal.
type PendingSales interface {
	// CreatePendingSale stores the sale and its create_sale queue entry in
	// one transaction, so that a stored sale always has a path to the
	// server.
	CreatePendingSale(ctx context.Context, sale models.PendingSale) (models.SyncQueueEntry, error)
	GetPendingSale(ctx context.Context, tempID string) (models.PendingSale, error)
	GetAllPendingSales(ctx context.Context) ([]models.PendingSale, error)
	GetPendingSalesByStatus(ctx context.Context, status models.SyncStatus) ([]models.PendingSale, error)
	SetSyncStatus(ctx context.Context, tempID string, status models.SyncStatus, lastError string) error
	MarkSynced(ctx context.Context, tempID string, serverID int64) error
	// AppendPayment adds a payment to a recorded sale and enqueues a
	// record_payment action carrying paymentRef as its idempotency key.
	AppendPayment(ctx context.Context, tempID string, paymentRef string, payment models.PaymentRecord) (models.SyncQueueEntry, error)
	CountByStatus(ctx context.Context, status models.SyncStatus) (int, error)
}

// SyncQueue is the FIFO queue of actions awaiting the server.
type SyncQueue interface {
	Enqueue(ctx context.Context, action models.ActionType, saleRef string, payload json.RawMessage) (models.SyncQueueEntry, error)
	GetAllInOrder(ctx context.Context) ([]models.SyncQueueEntry, error)
	Remove(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	// ReenqueueOrphans restores create_sale entries for unsynced sales that
	// lost their queue row (crash between dequeue and status update).
	ReenqueueOrphans(ctx context.Context) (int, error)
}

// Cache is the local read-only copy of server catalog data.
type Cache interface {
	PutProducts(ctx context.Context, products []models.Product) error
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	CountProducts(ctx context.Context) (int, error)
	PutClients(ctx context.Context, clients []models.Client) error
	GetClient(ctx context.Context, id int64) (models.Client, error)
	GetAllClients(ctx context.Context) ([]models.Client, error)
	CountClients(ctx context.Context) (int, error)
}
