// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package config

// Bcrypt's supported cost range, mirrored here so config validation does
// not need to import the crypto layer.
const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.KeyPrefix == "" || cfg.App.AdminUsername == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return ErrInvalidAppConfigs
	}

	return nil
}
