package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrSaleRejected        = errors.New("sale rejected by server")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// IsRejection reports whether err is a definitive server-side refusal, one
// that resubmitting the same payload cannot fix. Everything else (timeouts,
// refused connections, 5xx) is treated as transient and retried on the next
// sync run.
func IsRejection(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrSaleRejected)
}
