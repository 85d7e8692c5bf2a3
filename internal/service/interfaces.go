package service

import (
	"context"

	"github.com/ozerovd/go-sale-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages operator accounts and JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SalesService accepts sale and payment submissions coming from the
// terminals' sync queues and serves the admin-facing sale listing.
//
// Submission is idempotent on the client-generated refs: resubmitting an
// already committed sale or payment answers with the original server id and
// the duplicate flag set, never with a second booking.
type SalesService interface {
	SubmitSale(ctx context.Context, cashierID int64, req models.SubmitSaleRequest) (models.SaleAck, error)
	AddPayment(ctx context.Context, clientRef string, req models.SubmitPaymentRequest) (models.PaymentAck, error)
	ListSales(ctx context.Context, filter models.SaleFilter) (models.SaleListResponse, error)
}

// CatalogService serves the paginated bulk listings the terminals cache.
type CatalogService interface {
	ListProducts(ctx context.Context, limit, offset int) (models.ProductListResponse, error)
	ListClients(ctx context.Context, limit, offset int) (models.ClientListResponse, error)
}
