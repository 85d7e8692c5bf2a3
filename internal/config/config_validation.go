// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied when neither env, flags, nor the JSON file provide a
// value. Secrets (token sign key, DSN) intentionally have no defaults.
const (
	defaultRequestTimeout = 30 * time.Second
	defaultTokenDuration  = 12 * time.Hour
	defaultTokenIssuer    = "go-sale-keeper"
	defaultSyncInterval   = 30 * time.Second
	defaultRefRetention   = 30 * 24 * time.Hour
	defaultSweepInterval  = 6 * time.Hour
	defaultCachePageSize  = 500
)

func (c *StructuredConfig) applyDefaults() {
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if c.App.TokenDuration <= 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.Workers.SyncInterval <= 0 {
		c.Workers.SyncInterval = defaultSyncInterval
	}
	if c.Workers.RefRetention <= 0 {
		c.Workers.RefRetention = defaultRefRetention
	}
	if c.Workers.SweepInterval <= 0 {
		c.Workers.SweepInterval = defaultSweepInterval
	}
	if c.Workers.CachePageSize <= 0 {
		c.Workers.CachePageSize = defaultCachePageSize
	}
}

func (c *ServerConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		return ErrNoServerAddress
	}
	if c.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}
	if c.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	return nil
}

func (c *ClientConfig) validate() error {
	if c.Adapter.HTTPAddress == "" {
		return ErrNoAdapterAddress
	}
	if c.Storage.Path == "" {
		return ErrNoLocalStorePath
	}
	return nil
}
