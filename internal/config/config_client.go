package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the terminal transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL used by the terminal.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the terminal's local store settings.
type ClientStorage struct {
	// Path is the SQLite database file path.
	Path string
}

// ClientWorkers contains terminal background job settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync loop runs.
	SyncInterval time.Duration
	// CachePageSize is the page size for cache repopulation.
	CachePageSize int
}

// ClientConfig is the top-level POS terminal configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains terminal transport address and timeout.
	Adapter ClientAdapter
	// Storage contains local store settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a terminal-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Path: cfg.Storage.Local.Path,
		},
		Workers: ClientWorkers{
			SyncInterval:  cfg.Workers.SyncInterval,
			CachePageSize: cfg.Workers.CachePageSize,
		},
	}

	return clientCfg, clientCfg.validate()
}
