// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/virtuoso-tours/go-tour-vault/internal/config"
	"github.com/virtuoso-tours/go-tour-vault/internal/crypto"
	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
	"github.com/virtuoso-tours/go-tour-vault/internal/seed"
	"github.com/virtuoso-tours/go-tour-vault/internal/store"
	"github.com/virtuoso-tours/go-tour-vault/internal/validators"
	"github.com/virtuoso-tours/go-tour-vault/models"
)

// backupService is the concrete implementation of [BackupService]. It is
// the only service that reaches past the typed repositories to the raw
// key/value adapter: imported sections are applied verbatim, byte for
// byte, so that documents written by older schema revisions restore
// unchanged and get upgraded on their next load instead of at import time.
type backupService struct {
	storages  *store.Storages
	configs   ConfigService
	analytics AnalyticsService
	hasher    crypto.PasswordHasher
	app       config.App
	now       func() time.Time
	logger    *logger.Logger
}

// NewBackupService constructs a [BackupService] coordinating the given
// stores and services.
func NewBackupService(storages *store.Storages, configs ConfigService, analytics AnalyticsService, hasher crypto.PasswordHasher, app config.App, logger *logger.Logger) BackupService {
	return &backupService{
		storages:  storages,
		configs:   configs,
		analytics: analytics,
		hasher:    hasher,
		app:       app,
		now:       time.Now,
		logger:    logger,
	}
}

// Init implements [BackupService]. Each store is seeded independently, so
// running Init against a half-populated database fills only the gaps.
func (b *backupService) Init(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, found, err := b.storages.KV.Get(ctx, b.storages.Keys.Users())
	if err != nil {
		return err
	}
	if !found {
		hashed, err := b.hasher.Hash(b.app.AdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash administrator credential: %w", err)
		}

		admin := seed.AdminUser(b.app.AdminUsername, hashed)
		if err := b.storages.Users.SaveUsers(ctx, []models.User{admin}); err != nil {
			return err
		}
		log.Info().Str("username", admin.Username).Msg("seeded built-in administrator")
	}

	_, found, err = b.storages.KV.Get(ctx, b.storages.Keys.Config())
	if err != nil {
		return err
	}
	if !found {
		if err := b.configs.Save(ctx, seed.DefaultConfig()); err != nil {
			return err
		}
		log.Info().Msg("seeded default site configuration")
	}

	_, found, err = b.storages.KV.Get(ctx, b.storages.Keys.Analytics())
	if err != nil {
		return err
	}
	if !found {
		if err := b.storages.Analytics.SaveRecords(ctx, seed.DefaultAnalytics(b.now())); err != nil {
			return err
		}
		log.Info().Msg("seeded default analytics records")
	}

	return nil
}

// Backup implements [BackupService]. The configuration section goes
// through [ConfigService.Load], so an exported document always carries the
// current grouped-contacts shape even if the stored one was still legacy.
func (b *backupService) Backup(ctx context.Context) (string, error) {
	users, err := b.storages.Users.ListUsers(ctx)
	if err != nil {
		return "", err
	}

	cfg, err := b.configs.Load(ctx)
	if err != nil {
		return "", err
	}

	records, err := b.analytics.Load(ctx)
	if err != nil {
		return "", err
	}

	document := models.BackupDocument{
		Users:     users,
		Config:    cfg,
		Analytics: records,
		Timestamp: b.now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode backup document: %w", err)
	}

	return string(data), nil
}

// Restore implements [BackupService]. Validation happens up front; the
// stores are only touched once the document as a whole has been accepted.
func (b *backupService) Restore(ctx context.Context, document []byte) error {
	log := logger.FromContext(ctx)

	envelope, err := validators.ParseBackup(document)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBackupDocument, err)
	}

	sections := []struct {
		key string
		raw *json.RawMessage
	}{
		{b.storages.Keys.Users(), envelope.Users},
		{b.storages.Keys.Config(), envelope.Config},
		{b.storages.Keys.Analytics(), envelope.Analytics},
	}

	restored := 0
	for _, section := range sections {
		if section.raw == nil {
			continue
		}
		if err := b.storages.KV.Set(ctx, section.key, string(*section.raw)); err != nil {
			return err
		}
		restored++
	}

	log.Info().Int("sections", restored).Str("timestamp", envelope.Timestamp).Msg("restored backup document")
	return nil
}

// Reset implements [BackupService]. The session reference is cleared along
// with the data stores, so whoever was logged in is logged out.
func (b *backupService) Reset(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for _, key := range b.storages.Keys.All() {
		if err := b.storages.KV.Delete(ctx, key); err != nil {
			return err
		}
	}

	log.Info().Msg("cleared all stores, reseeding defaults")
	return b.Init(ctx)
}
