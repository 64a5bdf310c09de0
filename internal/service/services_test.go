// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/virtuoso-tours/go-tour-vault/internal/config"
	"github.com/virtuoso-tours/go-tour-vault/internal/crypto"
	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
	"github.com/virtuoso-tours/go-tour-vault/internal/store"
)

// newTestStack wires the full service layer over the in-memory adapter.
// Tests exercise the real repositories underneath so load/save round trips
// behave exactly as they do against SQLite.
func newTestStack(t *testing.T) (*store.Storages, *Services) {
	t.Helper()

	storages := store.NewStoragesWithKV(store.NewMemoryKeyValue(), "virtuoso", logger.Nop())
	services := NewServices(
		storages,
		crypto.NewPasswordHasher(bcrypt.MinCost),
		config.App{
			KeyPrefix:     "virtuoso",
			BcryptCost:    bcrypt.MinCost,
			AdminUsername: "admin",
			AdminPassword: "password",
		},
		logger.Nop(),
	)

	return storages, services
}
