// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package config

import (
	"flag"
	"os"
)

// ParseFlags parses all configuration flags from the process arguments.
// Arguments remaining after the flags (the CLI subcommand and its
// parameters) stay available via flag.Args.
//
// Flags:
//
//	-d database file path (SQLite)
//	-c/-config json file path with configs
//	-key-prefix storage key namespace prefix
//	-bcrypt-cost bcrypt work factor for password hashing
//	-admin-username seeded administrator login
//	-admin-password seeded administrator password
func ParseFlags() *StructuredConfig {
	return parseFlagSet(flag.CommandLine, os.Args[1:])
}

func parseFlagSet(fs *flag.FlagSet, args []string) *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var keyPrefix string
	var bcryptCost int
	var adminUsername string
	var adminPassword string

	fs.StringVar(&databaseDSN, "d", "", "Database file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&keyPrefix, "key-prefix", "", "Storage key namespace prefix")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor (4-31)")
	fs.StringVar(&adminUsername, "admin-username", "", "Seeded administrator login")
	fs.StringVar(&adminPassword, "admin-password", "", "Seeded administrator password")

	fs.Parse(args)

	return &StructuredConfig{
		App: App{
			KeyPrefix:     keyPrefix,
			BcryptCost:    bcryptCost,
			AdminUsername: adminUsername,
			AdminPassword: adminPassword,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
