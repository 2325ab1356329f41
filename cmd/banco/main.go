// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package main

import (
	"fmt"

	"github.com/paulobof/sistema-bancario/internal/banco"
	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/paulobof/sistema-bancario/internal/service"
	"github.com/paulobof/sistema-bancario/internal/store"
	"github.com/paulobof/sistema-bancario/internal/tui"
	"github.com/paulobof/sistema-bancario/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewTerminalLogger("sistema-bancario")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	ui, err := tui.New(services, cfg.Limits, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app, err := banco.NewApp(cfg, services, ui, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("app run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
