package pos

import "errors"

var (
	ErrSyncInProgress = errors.New("sync already in progress")

	ErrEmptySale          = errors.New("sale must contain at least one item")
	ErrInvalidQuantity    = errors.New("item quantity must be positive")
	ErrInvalidUnitPrice   = errors.New("item unit price must be positive")
	ErrInvalidPayment     = errors.New("payment amount must be positive")
	ErrOverpayment        = errors.New("payments exceed sale total")
	ErrUnknownQueueAction = errors.New("unknown sync queue action")
)
