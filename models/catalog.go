package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a denormalized catalog snapshot, sufficient for composing a sale
// offline. The client never mutates individual rows; the cache is only ever
// replaced wholesale by a refresh.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stock_quantity"`
	Unit          string          `json:"unit"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Client is a buyer snapshot cached for offline sale composition.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
