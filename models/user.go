// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package models

// UserRole describes the authorization level of an account.
type UserRole string

const (
	// RoleAdmin marks the built-in administrator account. Admin accounts
	// are seeded verified and setup-complete and are protected from
	// deletion by the caller, not by the storage layer.
	RoleAdmin UserRole = "ADMIN"

	// RoleUser marks a regular account created through registration.
	RoleUser UserRole = "USER"
)

// User represents an account entity used for authentication and profile
// management. The JSON field names match the persisted document layout, so
// records written by earlier schema revisions unmarshal without conversion.
type User struct {
	// ID is the unique identifier of the account and the key used for all
	// replace-by-id operations.
	ID string `json:"id"`

	// Username is the email-like login identifier. It is the lookup key
	// for authentication and is kept unique at registration time.
	Username string `json:"username"`

	// Credential is the stored password representation. New accounts
	// always carry a bcrypt hash; records surviving from earlier schema
	// revisions may still hold a legacy form (raw plaintext or the old
	// fixed-salt encoding) until their next successful login upgrades
	// them. The legacy key name "password" is kept for document
	// compatibility.
	Credential string `json:"password,omitempty"`

	// Role is the authorization level of the account.
	Role UserRole `json:"role"`

	// IsVerified reports whether the account has passed verification.
	// Registration always produces unverified accounts.
	IsVerified bool `json:"isVerified"`

	// IsSetupComplete reports whether the post-signup onboarding flow has
	// been finished for this account.
	IsSetupComplete bool `json:"isSetupComplete"`

	// FullName is the display name collected during onboarding.
	FullName string `json:"fullName,omitempty"`

	// ContactNumber is the phone number collected during onboarding.
	ContactNumber string `json:"contactNumber,omitempty"`

	// CompanyName is the company affiliation collected during onboarding.
	CompanyName string `json:"companyName,omitempty"`

	// UniqueID is a 7-character uppercase alphanumeric token assigned when
	// onboarding completes.
	UniqueID string `json:"uniqueId,omitempty"`
}
