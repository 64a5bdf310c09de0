// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

func TestParseFlagSet_AllFlags(t *testing.T) {
	cfg := parseFlagSet(newTestFlagSet(), []string{
		"-d", "/tmp/tour.db",
		"-c", "/tmp/config.json",
		"-key-prefix", "tourtest",
		"-bcrypt-cost", "12",
		"-admin-username", "root@example.com",
		"-admin-password", "s3cret",
	})

	assert.Equal(t, "/tmp/tour.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
	assert.Equal(t, "tourtest", cfg.App.KeyPrefix)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "root@example.com", cfg.App.AdminUsername)
	assert.Equal(t, "s3cret", cfg.App.AdminPassword)
}

func TestParseFlagSet_ConfigAlias(t *testing.T) {
	cfg := parseFlagSet(newTestFlagSet(), []string{"-config", "/etc/tour.json"})

	assert.Equal(t, "/etc/tour.json", cfg.JSONFilePath)
}

func TestParseFlagSet_NoFlags(t *testing.T) {
	cfg := parseFlagSet(newTestFlagSet(), nil)

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.App.KeyPrefix)
	assert.Zero(t, cfg.App.BcryptCost)
}

func TestParseFlagSet_SubcommandArgsRemain(t *testing.T) {
	fs := newTestFlagSet()
	_ = parseFlagSet(fs, []string{"-d", "/tmp/tour.db", "backup", "-o", "dump.json"})

	assert.Equal(t, []string{"backup", "-o", "dump.json"}, fs.Args())
}
