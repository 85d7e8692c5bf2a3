// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ozerovd/go-sale-keeper/internal/config"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/pos"
	"github.com/ozerovd/go-sale-keeper/internal/tui"
)

const defaultSyncInterval = 5 * time.Minute

// App is the POS terminal application: login flow, background sync loop and
// the interactive till loop, run in that order.
type App struct {
	services *pos.Services
	tui      *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *pos.Services, ui *tui.TUI, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}

	return &App{
		services: services,
		tui:      ui,
		workers:  workers,
		logger:   log,
	}, nil
}

// Run starts the terminal. It returns nil when the operator quits on purpose.
func (a *App) Run() error {
	ctx := context.Background()

	userID, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("login flow: %w", err)
	}
	a.logger.Info().Int64("user_id", userID).Msg("operator logged in")

	// flush anything recorded while the terminal was offline; each sync run
	// also re-enqueues sales orphaned by a crash between writes
	if _, syncErr := a.services.Synchronizer.SyncNow(ctx); syncErr != nil {
		fmt.Fprintf(os.Stderr, "sync warning: %v\n", syncErr)
	}
	if _, refreshErr := a.services.CacheRefresher.RefreshCaches(ctx); refreshErr != nil {
		fmt.Fprintf(os.Stderr, "cache refresh warning: %v\n", refreshErr)
	}

	interval := a.workers.SyncInterval
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	a.services.SyncJob.Start(ctx, interval)
	defer a.services.SyncJob.Stop()

	if err = a.tui.MainLoop(ctx, a.services); err != nil {
		return fmt.Errorf("main loop: %w", err)
	}

	return nil
}
