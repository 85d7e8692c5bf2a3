package config

import "fmt"

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig]. It is a narrowed view: the server never needs the
// terminal's adapter or local store settings.
type ServerConfig struct {
	// App contains token and version settings.
	App App
	// Storage contains the PostgreSQL connection settings.
	Storage Storage
	// Server contains the listen address and request timeout.
	Server Server
	// Workers contains retention sweeper settings.
	Workers Workers
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Workers: cfg.Workers,
	}

	return serverCfg, serverCfg.validate()
}
