package http

import (
	"errors"
	"net/http"

	"github.com/ozerovd/go-sale-keeper/internal/service"
	"github.com/ozerovd/go-sale-keeper/internal/store"
)

// errorStatusMap translates service and storage sentinels into HTTP status
// codes. The 4xx entries matter to the terminals: everything in that range is
// treated as a final rejection and halts automatic retries, while 5xx keeps
// the sale queued for the next sync run.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrSaleNotFound:       http.StatusNotFound,

	// business rejections of a sale: the stock is gone or the item is unknown
	store.ErrInsufficientStock: http.StatusUnprocessableEntity,
	store.ErrProductNotFound:   http.StatusUnprocessableEntity,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
