// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package store

import (
	"context"
	"sync"
)

// MemoryKeyValue is an in-memory [KeyValue] used for tests and for
// ":memory:" DSNs, where nothing must outlive the process.
type MemoryKeyValue struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryKeyValue constructs an empty in-memory [KeyValue].
func NewMemoryKeyValue() *MemoryKeyValue {
	return &MemoryKeyValue{
		entries: make(map[string]string),
	}
}

// Get implements [KeyValue].
func (m *MemoryKeyValue) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	return value, ok, nil
}

// Set implements [KeyValue].
func (m *MemoryKeyValue) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
	return nil
}

// Delete implements [KeyValue].
func (m *MemoryKeyValue) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}
