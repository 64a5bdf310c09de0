// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
)

// sqliteKeyValue is the SQLite-backed implementation of [KeyValue]. Every
// operation is a single statement against the kv_entries table, so each
// call is durable on its own, matching the adapter contract.
type sqliteKeyValue struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteKeyValue constructs a [KeyValue] backed by the given database
// handle.
func NewSQLiteKeyValue(db *DB, logger *logger.Logger) KeyValue {
	logger.Debug().Msg("creating sqlite key/value adapter")
	return &sqliteKeyValue{
		db:     db,
		logger: logger,
	}
}

// Get implements [KeyValue]. A missing key is reported via the boolean
// result, not an error.
func (s *sqliteKeyValue) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	var value string
	row := s.db.QueryRowContext(ctx, getKVEntry, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		log.Err(err).
			Str("func", "*sqliteKeyValue.Get").
			Str("key", key).
			Msg("failed to read key/value entry")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

// Set implements [KeyValue] with an upsert, so repeated writes to the same
// key replace the value in place.
func (s *sqliteKeyValue) Set(ctx context.Context, key string, value string) error {
	log := logger.FromContext(ctx)

	if _, err := s.db.ExecContext(ctx, upsertKVEntry, key, value); err != nil {
		log.Err(err).
			Str("func", "*sqliteKeyValue.Set").
			Str("key", key).
			Msg("failed to upsert key/value entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete implements [KeyValue]. Deleting an absent key succeeds.
func (s *sqliteKeyValue) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := s.db.ExecContext(ctx, deleteKVEntry, key); err != nil {
		log.Err(err).
			Str("func", "*sqliteKeyValue.Delete").
			Str("key", key).
			Msg("failed to delete key/value entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
