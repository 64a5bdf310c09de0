// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package models

// AppConfig is the current (v2) shape of the site-configuration document.
// There is exactly one such document per installation; it is seeded with
// defaults on first run and afterwards only replaced, never deleted.
type AppConfig struct {
	// PanoramaURL is the address of the embedded virtual-tour viewer.
	PanoramaURL string `json:"panoramaUrl"`

	// ContactGroups is the canonical contact representation: entries
	// grouped under a titled category.
	ContactGroups []ContactGroup `json:"contactGroups"`

	// Developers lists the property developers shown on the site.
	Developers []DeveloperEntry `json:"developers"`

	// Bookings lists the external booking systems the site links to.
	Bookings []BookingEntry `json:"bookings"`
}

// ContactGroup is a titled category of contact entries.
type ContactGroup struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Items []ContactEntry `json:"items"`
}

// ContactEntry is a single contact inside a group.
type ContactEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Details string `json:"details"`
}

// DeveloperEntry describes one property developer.
type DeveloperEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// BookingEntry describes one external booking system.
type BookingEntry struct {
	ID         string `json:"id"`
	SystemName string `json:"systemName"`
	URL        string `json:"url"`
}

// LegacyContactEntry is the v1 flat contact shape. Its Category field
// determines which group the entry lands in when the document is upgraded.
type LegacyContactEntry struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Details  string `json:"details"`
}

// ConfigSchema discriminates the two persisted revisions of the
// configuration document.
type ConfigSchema int

const (
	// ConfigSchemaV1 is the legacy revision with a flat "contacts" list.
	ConfigSchemaV1 ConfigSchema = iota + 1

	// ConfigSchemaV2 is the current revision with grouped contacts.
	ConfigSchemaV2
)

// ConfigEnvelope mirrors both persisted revisions of the configuration
// document. A stored document decodes into the envelope first; Schema then
// reports which revision it carries so the upgrade path can switch on an
// explicit tag instead of probing raw JSON.
type ConfigEnvelope struct {
	PanoramaURL   string               `json:"panoramaUrl"`
	Contacts      []LegacyContactEntry `json:"contacts,omitempty"`
	ContactGroups []ContactGroup       `json:"contactGroups,omitempty"`
	Developers    []DeveloperEntry     `json:"developers"`
	Bookings      []BookingEntry       `json:"bookings"`
}

// Schema reports the revision of the document held in the envelope.
// A document is v1 exactly when it has a legacy contacts list and no
// contact groups; everything else is treated as v2 (a document with
// neither list is an empty v2 document that gets defaults substituted).
func (e ConfigEnvelope) Schema() ConfigSchema {
	if e.ContactGroups == nil && e.Contacts != nil {
		return ConfigSchemaV1
	}
	return ConfigSchemaV2
}

// Config returns the v2 view of the envelope. Callers must only invoke it
// on envelopes whose Schema is [ConfigSchemaV2].
func (e ConfigEnvelope) Config() AppConfig {
	return AppConfig{
		PanoramaURL:   e.PanoramaURL,
		ContactGroups: e.ContactGroups,
		Developers:    e.Developers,
		Bookings:      e.Bookings,
	}
}

// Envelope wraps a v2 document back into envelope form for persistence.
func (c AppConfig) Envelope() ConfigEnvelope {
	return ConfigEnvelope{
		PanoramaURL:   c.PanoramaURL,
		ContactGroups: c.ContactGroups,
		Developers:    c.Developers,
		Bookings:      c.Bookings,
	}
}
