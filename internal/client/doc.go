// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

// Package client implements the command-line surface of the tour vault:
// first-run initialisation, account listing, and the backup, restore, and
// reset maintenance commands.
package client
