// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package models

// Session is the single stored reference denoting the active account in
// this installation. It deliberately carries no expiry, token, or device
// binding; an absent session simply means logged out.
type Session struct {
	// UserID is the id of the logged-in account.
	UserID string
}
