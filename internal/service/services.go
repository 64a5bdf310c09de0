// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package service

import (
	"github.com/virtuoso-tours/go-tour-vault/internal/config"
	"github.com/virtuoso-tours/go-tour-vault/internal/crypto"
	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
	"github.com/virtuoso-tours/go-tour-vault/internal/store"
)

// Services bundles every business service behind one value.
type Services struct {
	Accounts  AccountService
	Config    ConfigService
	Analytics AnalyticsService
	Backup    BackupService
}

// NewServices wires the full service layer over the given storage layer.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, app config.App, log *logger.Logger) *Services {
	configs := NewConfigService(storages.Config, log)
	analytics := NewAnalyticsService(storages.Analytics, log)

	return &Services{
		Accounts:  NewAccountService(storages.Users, storages.Session, hasher, log),
		Config:    configs,
		Analytics: analytics,
		Backup:    NewBackupService(storages, configs, analytics, hasher, app, log),
	}
}
