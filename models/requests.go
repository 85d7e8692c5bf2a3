package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitSaleRequest is the wire payload for POST /api/v1/sales. ClientRef is
// the client-generated temp id; the server uses it to detect a resubmission
// of an already committed sale and answer with the original server id instead
// of double-booking.
type SubmitSaleRequest struct {
	ClientRef      string               `json:"client_ref" validate:"required,uuid"`
	CreatedAtLocal time.Time            `json:"created_at_local" validate:"required"`
	Items          []SaleItemRequest    `json:"items" validate:"required,min=1,dive"`
	Payments       []SalePaymentRequest `json:"payments" validate:"dive"`
}

type SaleItemRequest struct {
	ProductID int64           `json:"product_id" validate:"required,min=1"`
	Quantity  int64           `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
	BatchID   *int64          `json:"batch_id,omitempty" validate:"omitempty,min=1"`
}

type SalePaymentRequest struct {
	Method          string          `json:"method" validate:"required,oneof=cash card transfer"`
	Amount          decimal.Decimal `json:"amount" validate:"required"`
	ReferenceNumber *string         `json:"reference_number,omitempty"`
}

// SaleAck is the server's answer to a sale submission. Duplicate is true when
// the client ref was seen before; the caller must treat that exactly like a
// fresh success.
type SaleAck struct {
	ServerID  int64  `json:"server_id"`
	ClientRef string `json:"client_ref"`
	Duplicate bool   `json:"duplicate"`
}

// SubmitPaymentRequest is the wire payload for
// POST /api/v1/sales/{ref}/payments. PaymentRef is the idempotency key for
// this individual payment.
type SubmitPaymentRequest struct {
	PaymentRef string             `json:"payment_ref" validate:"required,uuid"`
	Payment    SalePaymentRequest `json:"payment" validate:"required"`
}

// PaymentAck mirrors SaleAck for payment submissions.
type PaymentAck struct {
	PaymentID int64 `json:"payment_id"`
	Duplicate bool  `json:"duplicate"`
}

// RegisterRequest and LoginRequest carry operator credentials.
type RegisterRequest struct {
	Login    string `json:"login" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin cashier"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProductListResponse and ClientListResponse are paginated bulk list payloads
// used solely to repopulate the client-side caches.
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}

type ClientListResponse struct {
	Clients []Client `json:"clients"`
	Total   int      `json:"total"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

// SaleListResponse is the admin-facing filtered sale listing.
type SaleListResponse struct {
	Sales   []Sale       `json:"sales"`
	Summary SalesSummary `json:"summary"`
}
