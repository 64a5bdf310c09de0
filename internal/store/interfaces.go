// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/virtuoso-tours/go-tour-vault/models"
)

// KeyValue is the adapter over the persistent string-keyed store. Each call
// is an independent, immediately durable operation; there is no
// transactionality across keys, and callers own JSON (de)serialization and
// any read-modify-write window.
type KeyValue interface {
	// Get returns the value stored under key. The second result is false
	// when the key is absent; absence is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set durably stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// UserRepository persists the account list as a single JSON document.
type UserRepository interface {
	// ListUsers returns all accounts in insertion order. An absent
	// document yields an empty list.
	ListUsers(ctx context.Context) ([]models.User, error)

	// SaveUsers replaces the whole account list.
	SaveUsers(ctx context.Context, users []models.User) error

	// SaveUser upserts a single account by id: an existing record is
	// replaced in place, a new one is appended.
	SaveUser(ctx context.Context, user models.User) error

	// FindUserByID returns the account with the given id or
	// [ErrUserNotFound].
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// FindUserByUsername returns the first account with the given
	// username or [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// DeleteUser removes the account with the given id. Removing an
	// unknown id is not an error.
	DeleteUser(ctx context.Context, id string) error
}

// ConfigRepository persists the site-configuration document. It reads and
// writes the schema envelope; interpreting the schema revision is the
// service layer's concern.
type ConfigRepository interface {
	// LoadEnvelope returns the stored document. The second result is
	// false when no document has been stored yet.
	LoadEnvelope(ctx context.Context) (models.ConfigEnvelope, bool, error)

	// SaveEnvelope replaces the stored document.
	SaveEnvelope(ctx context.Context, envelope models.ConfigEnvelope) error
}

// AnalyticsRepository persists the per-day visit counters.
type AnalyticsRepository interface {
	// ListRecords returns the stored records. The second result is false
	// when no records have been stored yet.
	ListRecords(ctx context.Context) ([]models.AnalyticsRecord, bool, error)

	// SaveRecords replaces the stored records.
	SaveRecords(ctx context.Context, records []models.AnalyticsRecord) error
}

// SessionRepository persists the single logged-in-account reference.
type SessionRepository interface {
	// GetSession returns the stored session or [ErrSessionNotFound].
	GetSession(ctx context.Context) (models.Session, error)

	// SetSession stores the session reference.
	SetSession(ctx context.Context, session models.Session) error

	// ClearSession removes the session reference; clearing an absent
	// session is not an error.
	ClearSession(ctx context.Context) error
}
