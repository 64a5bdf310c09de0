// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package store

// Keyspace derives the logical key names of the four persisted documents
// from the configured application prefix. With the default "virtuoso"
// prefix the keys match the ones written by earlier revisions of the
// application, so existing data is picked up as-is.
type Keyspace struct {
	prefix string
}

// NewKeyspace constructs a [Keyspace] for the given prefix.
func NewKeyspace(prefix string) Keyspace {
	return Keyspace{prefix: prefix}
}

// Users is the key of the JSON array of accounts.
func (k Keyspace) Users() string { return k.prefix + "_users" }

// Config is the key of the JSON configuration document.
func (k Keyspace) Config() string { return k.prefix + "_config" }

// Analytics is the key of the JSON array of analytics records.
func (k Keyspace) Analytics() string { return k.prefix + "_analytics" }

// Session is the key of the scalar current-user-id reference.
func (k Keyspace) Session() string { return k.prefix + "_session" }

// All lists every key owned by the application, in the order the stores
// are documented. Reset iterates over it.
func (k Keyspace) All() []string {
	return []string{k.Users(), k.Config(), k.Analytics(), k.Session()}
}
