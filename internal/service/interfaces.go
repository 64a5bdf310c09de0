// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

// Package service implements the business operations of the tour data
// layer: account lifecycle and sessions, the versioned site-configuration
// document, analytics, and whole-database backup/restore/reset.
package service

import (
	"context"

	"github.com/virtuoso-tours/go-tour-vault/models"
)

// AccountService owns account CRUD, authentication, and the session
// reference.
type AccountService interface {
	// Register creates a new unverified account with a hashed credential.
	// Returns [ErrUsernameAlreadyTaken] when the username is in use.
	Register(ctx context.Context, username, password string) (models.User, error)

	// Login authenticates and establishes the session. Unknown usernames
	// and wrong passwords both yield [ErrInvalidCredentials]; the two
	// cases are deliberately indistinguishable. A matching legacy
	// credential is re-hashed and persisted before the session is
	// established.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Logout clears the session reference; clearing an absent session is
	// not an error.
	Logout(ctx context.Context) error

	// CurrentUser resolves the session reference. Returns
	// [ErrNoActiveSession] when nobody is logged in or the referenced
	// account no longer exists.
	CurrentUser(ctx context.Context) (models.User, error)

	// ChangePassword replaces the credential of the given account with
	// the hash of the new password.
	ChangePassword(ctx context.Context, userID, newPassword string) (models.User, error)

	// SaveUser replaces the stored record with the same id wholesale.
	SaveUser(ctx context.Context, user models.User) (models.User, error)

	// CompleteSetup finishes onboarding for the given record: profile
	// fields are taken from user, the verification and setup flags are
	// raised, and a unique member token is assigned if absent.
	CompleteSetup(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the account unconditionally. Protecting the
	// built-in administrator is the caller's policy.
	DeleteUser(ctx context.Context, userID string) error

	// ListUsers returns all accounts in insertion order.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ConfigService owns the site-configuration document.
type ConfigService interface {
	// Load returns the stored document, upgrading a legacy v1 document
	// exactly once and substituting defaults when nothing is stored. The
	// upgrade is persisted, so loading again performs no transformation.
	Load(ctx context.Context) (models.AppConfig, error)

	// Save replaces the stored document wholesale.
	Save(ctx context.Context, cfg models.AppConfig) error

	// SetPanoramaURL updates the panorama address and persists.
	SetPanoramaURL(ctx context.Context, url string) (models.AppConfig, error)

	// UpdateDeveloper patches the developer with the given id: non-zero
	// fields of patch replace the stored values.
	UpdateDeveloper(ctx context.Context, id string, patch models.DeveloperEntry) (models.AppConfig, error)

	// UpdateBooking patches the booking entry with the given id.
	UpdateBooking(ctx context.Context, id string, patch models.BookingEntry) (models.AppConfig, error)

	// AddContactGroup appends an empty group with a fresh id.
	AddContactGroup(ctx context.Context, title string) (models.AppConfig, error)

	// RenameContactGroup retitles the group with the given id.
	RenameContactGroup(ctx context.Context, groupID, title string) (models.AppConfig, error)

	// RemoveContactGroup deletes the group and its items. Removing an
	// unknown group is not an error.
	RemoveContactGroup(ctx context.Context, groupID string) (models.AppConfig, error)

	// AddContactItem appends an entry with a fresh id to the group.
	AddContactItem(ctx context.Context, groupID, name, details string) (models.AppConfig, error)

	// UpdateContactItem patches one entry of one group.
	UpdateContactItem(ctx context.Context, groupID, itemID string, patch models.ContactEntry) (models.AppConfig, error)

	// RemoveContactItem deletes one entry of one group. Removing an
	// unknown entry is not an error.
	RemoveContactItem(ctx context.Context, groupID, itemID string) (models.AppConfig, error)
}

// AnalyticsService reads the per-day visit counters.
type AnalyticsService interface {
	// Load returns the stored records, seeding and persisting the default
	// week of synthetic data on first read. There is no mutation API
	// beyond that seeding.
	Load(ctx context.Context) ([]models.AnalyticsRecord, error)
}

// BackupService coordinates whole-database operations across the three
// stores and the session reference.
type BackupService interface {
	// Init seeds any store that is still empty with its defaults,
	// producing the first-run state. Stores that already hold data are
	// left untouched.
	Init(ctx context.Context) error

	// Backup serializes users, the post-migration configuration, and
	// analytics plus a capture timestamp into an indented JSON document
	// suitable for file export.
	Backup(ctx context.Context) (string, error)

	// Restore validates document and applies the sections it carries to
	// the corresponding stores wholesale; absent sections leave the
	// existing stores untouched. A rejected document
	// ([ErrInvalidBackupDocument]) changes nothing.
	Restore(ctx context.Context, document []byte) error

	// Reset clears all three stores and the session reference, then
	// reinitialises the seeded defaults.
	Reset(ctx context.Context) error
}
