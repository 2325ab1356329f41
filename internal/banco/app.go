// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package banco

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/paulobof/sistema-bancario/internal/service"
	"github.com/paulobof/sistema-bancario/internal/tui"
	"github.com/paulobof/sistema-bancario/models"
)

// App ties the service layer and the terminal UI together for one
// process run.
type App struct {
	cfg       *config.StructuredConfig
	services  *service.Services
	ui        *tui.TUI
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, services *service.Services, ui *tui.TUI, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg == nil || services == nil || ui == nil {
		return nil, errors.New("app init error: missing dependency")
	}

	return &App{
		cfg:       cfg,
		services:  services,
		ui:        ui,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run seeds the demo data when enabled and blocks inside the terminal
// UI until the user leaves. A user-initiated exit is a clean shutdown.
func (a *App) Run() error {
	ctx := context.Background()

	if a.cfg.App.SeedDemoData {
		if err := service.SeedDemoData(ctx, a.services, a.logger); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	if err := a.ui.Run(ctx, a.buildInfo); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Debug().Str("func", "Run").Msg("user left the application")
			return nil
		}
		return err
	}

	return nil
}
