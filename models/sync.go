package models

import (
	"encoding/json"
	"time"
)

// ActionType tags a sync queue entry with the mutating action it replays.
type ActionType string

const (
	ActionCreateSale    ActionType = "create_sale"
	ActionRecordPayment ActionType = "record_payment"
)

// SyncQueueEntry is one queued mutating action awaiting replay against the
// server. ID is a locally auto-incremented integer and is the sole authority
// for replay order; CreatedAt exists for diagnostics only.
type SyncQueueEntry struct {
	ID        int64           `json:"id"`
	Action    ActionType      `json:"action"`
	SaleRef   string          `json:"sale_ref"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateSalePayload is the payload of an ActionCreateSale entry. The sale
// itself lives in the pending-sales collection; the payload only references
// it so the queue never holds a second, divergent copy.
type CreateSalePayload struct {
	TempID string `json:"temp_id"`
}

// RecordPaymentPayload is the payload of an ActionRecordPayment entry.
// PaymentRef is a client-generated idempotency key for this payment, distinct
// from the sale's TempID, so resubmitting a payment after a lost
// acknowledgment cannot double-book it either.
type RecordPaymentPayload struct {
	SaleTempID string        `json:"sale_temp_id"`
	PaymentRef string        `json:"payment_ref"`
	Payment    PaymentRecord `json:"payment"`
}

// SyncReport summarizes one synchronizer run for the caller and the UI.
type SyncReport struct {
	Submitted  int       `json:"submitted"`
	Remaining  int       `json:"remaining"`
	Failed     bool      `json:"failed"`
	LastError  string    `json:"last_error,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}

// CacheRefreshStats reports how many cache rows a refresh repopulated.
type CacheRefreshStats struct {
	Products int `json:"products"`
	Clients  int `json:"clients"`
}
