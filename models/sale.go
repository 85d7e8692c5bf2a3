package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SyncStatus describes where a locally recorded sale is in its journey to the
// server. A sale is never removed from the local store while it is anything
// other than Synced.
type SyncStatus string

const (
	// SyncStatusPending — recorded locally, not yet submitted.
	SyncStatusPending SyncStatus = "pending"
	// SyncStatusSyncing — submission to the server is in flight.
	SyncStatusSyncing SyncStatus = "syncing"
	// SyncStatusSynced — the server confirmed persistence and assigned an id.
	SyncStatusSynced SyncStatus = "synced"
	// SyncStatusFailed — the server rejected the sale; an operator has to
	// resolve it, automatic retries will not help.
	SyncStatusFailed SyncStatus = "failed"
)

// SaleStatusCompleted is the only status the server assigns on submission;
// returns and voids are recorded as separate documents.
const SaleStatusCompleted = "completed"

// SaleItem is a single cart line. Quantity and price are frozen at the moment
// the sale is recorded; corrections require a new sale or a return.
type SaleItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	BatchID     *int64          `json:"batch_id,omitempty"`
}

// Subtotal returns UnitPrice * Quantity.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// PaymentRecord is one payment taken against a sale.
type PaymentRecord struct {
	Method          string          `json:"method"`
	Amount          decimal.Decimal `json:"amount"`
	PaidAt          time.Time       `json:"paid_at"`
	ReferenceNumber *string         `json:"reference_number,omitempty"`
}

// PendingSale is a sale recorded at the till, possibly while disconnected
// from the server. TempID is the primary key until the server assigns
// ServerID; it also doubles as the idempotency key for resubmissions.
type PendingSale struct {
	TempID         string          `json:"temp_id"`
	ServerID       *int64          `json:"server_id,omitempty"`
	CreatedAtLocal time.Time       `json:"created_at_local"`
	Items          []SaleItem      `json:"items"`
	Payments       []PaymentRecord `json:"payments"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	SyncStatus     SyncStatus      `json:"sync_status"`

	// LastError holds the most recent submission failure, for the operator.
	// Empty unless SyncStatus is Failed.
	LastError string `json:"last_error,omitempty"`
}

// Sale is the authoritative server-side record. ClientRef carries the
// client-generated TempID and is unique per sale, which is what makes
// resubmission after a lost acknowledgment safe.
type Sale struct {
	ID          int64           `json:"id"`
	ClientRef   string          `json:"client_ref"`
	CashierID   int64           `json:"cashier_id"`
	Items       []SaleItem      `json:"items"`
	Payments    []PaymentRecord `json:"payments"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`

	// CreatedAtLocal is the till-side creation time, kept for conflict
	// diagnostics; CreatedAt is when the server committed the row.
	CreatedAtLocal time.Time `json:"created_at_local"`
}

// SaleFilter narrows a server-side sale listing.
type SaleFilter struct {
	From      *time.Time
	To        *time.Time
	Status    string
	ClientRef string
	Limit     int
	Offset    int
}

// SalesSummary aggregates a filtered sale listing.
type SalesSummary struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
}
