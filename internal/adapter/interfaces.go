// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the POS terminal and
// the back-office server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal's
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. [IsRejection] separates the server's definitive "no" from
// transient transport failures; the synchronizer relies on that distinction to
// decide between marking a sale failed and retrying it later.
package adapter

import (
	"context"

	"github.com/ozerovd/go-sale-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the back-office
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an operator account on the server. On success it
	// stores the returned bearer token via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates the operator. On success it stores the returned
	// bearer token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) error

	// SubmitSale sends one recorded sale to the server. The returned ack
	// carries the server-assigned id; Duplicate is true when the server had
	// already committed this client ref, which the caller must treat exactly
	// like a fresh success.
	SubmitSale(ctx context.Context, req models.SubmitSaleRequest) (models.SaleAck, error)

	// SubmitPayment records a payment against an already synced sale,
	// addressed by its client ref. The payment ref inside req deduplicates
	// resubmissions on the server side.
	SubmitPayment(ctx context.Context, clientRef string, req models.SubmitPaymentRequest) (models.PaymentAck, error)

	// ListProducts fetches one page of the product catalog for cache
	// repopulation.
	ListProducts(ctx context.Context, limit, offset int) (models.ProductListResponse, error)

	// ListClients fetches one page of the client directory for cache
	// repopulation.
	ListClients(ctx context.Context, limit, offset int) (models.ClientListResponse, error)
}
