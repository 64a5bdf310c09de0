// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

// Package validators checks externally supplied documents before they are
// applied to the stores.
package validators

import (
	"bytes"
	"encoding/json"

	"github.com/virtuoso-tours/go-tour-vault/models"
)

// ParseBackup parses raw as a backup document and validates it for
// restore. The contract deliberately stops at top-level checks: the text
// must parse, the parsed value must be an object, and at least one of the
// users/config/analytics sections must be present. Section contents are
// applied verbatim; a config section in the legacy schema, for example, is
// accepted and upgraded on its next load.
func ParseBackup(raw []byte) (models.BackupEnvelope, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.BackupEnvelope{}, ErrMalformedDocument
	}

	var envelope models.BackupEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return models.BackupEnvelope{}, ErrMalformedDocument
	}

	if envelope.Users == nil && envelope.Config == nil && envelope.Analytics == nil {
		return models.BackupEnvelope{}, ErrNoKnownSections
	}

	return envelope, nil
}
