package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same login already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDuplicateClientRef is returned when a sale INSERT collides on the
	// client_ref unique constraint. This is the idempotency signal: the sale
	// was already committed by an earlier submission whose acknowledgment the
	// terminal never saw.
	ErrDuplicateClientRef = errors.New("sale with this client ref already exists")

	// ErrDuplicatePaymentRef is returned when a payment INSERT collides on
	// the payment_ref unique constraint.
	ErrDuplicatePaymentRef = errors.New("payment with this ref already exists")

	// ErrSaleNotFound is returned when a lookup by id or client ref matches
	// no sale.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrInsufficientStock is returned when committing a sale would drive a
	// product's stock below zero. The first submission to reach the server
	// wins the stock; later ones are rejected.
	ErrInsufficientStock = errors.New("insufficient stock for sale item")

	// ErrProductNotFound is returned when a sale references a product id
	// absent from the catalog.
	ErrProductNotFound = errors.New("product not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
