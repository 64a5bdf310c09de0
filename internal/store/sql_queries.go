// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package store

const (
	getKVEntry = `
		SELECT value
		FROM kv_entries
		WHERE key = $1;`

	upsertKVEntry = `
		INSERT INTO kv_entries (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	deleteKVEntry = `
		DELETE FROM kv_entries
		WHERE key = $1;`
)
