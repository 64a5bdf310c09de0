// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package store

import (
	"context"
	"fmt"

	"github.com/virtuoso-tours/go-tour-vault/internal/config"
	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
)

// Storages groups the key/value adapter, the keyspace, and all typed
// repositories into a single value that can be passed around the service
// layer.
type Storages struct {
	// KV is the raw adapter. The backup coordinator uses it directly to
	// write imported sections verbatim.
	KV KeyValue

	// Keys names the four persisted documents.
	Keys Keyspace

	// Users is the account repository.
	Users UserRepository

	// Config is the site-configuration repository.
	Config ConfigRepository

	// Analytics is the visit-counter repository.
	Analytics AnalyticsRepository

	// Session is the logged-in-reference repository.
	Session SessionRepository
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path in cfg.DB.DSN, creating
//     the database file if it does not yet exist; a ":memory:" DSN gets
//     the in-memory adapter instead.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [Storages] value wired to fresh repositories sharing
//     one adapter and the keyspace derived from keyPrefix.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, keyPrefix string, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	var kv KeyValue
	if cfg.DB.DSN == ":memory:" || cfg.DB.DSN == "memory" {
		kv = NewMemoryKeyValue()
	} else {
		db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		kv = NewSQLiteKeyValue(db, logger)
	}

	return NewStoragesWithKV(kv, keyPrefix, logger), nil
}

// NewStoragesWithKV wires a [Storages] value around an existing adapter.
// Tests use it to run the full repository stack against the in-memory
// adapter.
func NewStoragesWithKV(kv KeyValue, keyPrefix string, logger *logger.Logger) *Storages {
	keys := NewKeyspace(keyPrefix)

	return &Storages{
		KV:        kv,
		Keys:      keys,
		Users:     NewUserRepository(kv, keys, logger),
		Config:    NewConfigRepository(kv, keys, logger),
		Analytics: NewAnalyticsRepository(kv, keys, logger),
		Session:   NewSessionRepository(kv, keys, logger),
	}
}
