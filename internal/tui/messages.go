package tui

import (
	"github.com/ozerovd/go-sale-keeper/models"
)

// NavigateTo switches the login flow to another page.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the login flow on success.
type LoginResult struct {
	Err      error
	Username string
	UserID   int64
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Username string
}

type salesLoadedMsg struct {
	sales []models.PendingSale
	err   error
}

type productsLoadedMsg struct {
	products []models.Product
	err      error
}

type saleRecordedMsg struct {
	sale models.PendingSale
	err  error
}

type paymentDoneMsg struct {
	sale models.PendingSale
	err  error
}

type syncDoneMsg struct {
	report models.SyncReport
	err    error
}

type cacheRefreshedMsg struct {
	stats models.CacheRefreshStats
	err   error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
