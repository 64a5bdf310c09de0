// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/virtuoso-tours/go-tour-vault/internal/client"
	"github.com/virtuoso-tours/go-tour-vault/internal/config"
	"github.com/virtuoso-tours/go-tour-vault/internal/crypto"
	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
	"github.com/virtuoso-tours/go-tour-vault/internal/service"
	"github.com/virtuoso-tours/go-tour-vault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewFileLogger("tour-vault")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, cfg.App.KeyPrefix, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}

	services := service.NewServices(storages, crypto.NewPasswordHasher(cfg.App.BcryptCost), cfg.App, log)

	app := client.NewApp(services, log)
	if err := app.Run(context.Background(), flag.Args()); err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
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
