package config

import "errors"

var (
	// ErrNoServerAddress is returned when the server binary starts without a
	// listen address.
	ErrNoServerAddress = errors.New("no server address provided")

	// ErrNoDatabaseDSN is returned when the server binary starts without a
	// database connection string.
	ErrNoDatabaseDSN = errors.New("no database DSN provided")

	// ErrNoTokenSignKey is returned when the server binary starts without a
	// JWT signing key.
	ErrNoTokenSignKey = errors.New("no token sign key provided")

	// ErrNoAdapterAddress is returned when the POS terminal starts without a
	// server base URL.
	ErrNoAdapterAddress = errors.New("no server address provided for the terminal")

	// ErrNoLocalStorePath is returned when the POS terminal starts without a
	// local store path. Running without a durable local store would mean
	// losing offline sales on exit.
	ErrNoLocalStorePath = errors.New("no local store path provided")
)
