// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package models

import "encoding/json"

// BackupDocument is the portable point-in-time serialization of all three
// stores, produced for file export. It is a transport format only and is
// never used for ongoing storage.
type BackupDocument struct {
	Users     []User            `json:"users"`
	Config    AppConfig         `json:"config"`
	Analytics []AnalyticsRecord `json:"analytics"`

	// Timestamp is the ISO-8601 capture time of the snapshot.
	Timestamp string `json:"timestamp"`
}

// BackupEnvelope is the import-side view of a backup document. Sections
// are kept as raw JSON so a partial document can be applied verbatim to
// the stores it names while leaving the others untouched, and so documents
// produced by older schema revisions (e.g. a pre-migration config) restore
// unchanged and are upgraded on their next load.
type BackupEnvelope struct {
	Users     *json.RawMessage `json:"users"`
	Config    *json.RawMessage `json:"config"`
	Analytics *json.RawMessage `json:"analytics"`
	Timestamp string           `json:"timestamp"`
}
