// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

// Package seed supplies the static data every fresh installation starts
// from: the built-in administrator, the default site configuration, and a
// week of synthetic analytics. The values are consumed verbatim by the
// first-run initialisation and by reset.
package seed

import (
	"math/rand"
	"time"

	"github.com/virtuoso-tours/go-tour-vault/models"
)

// Identity of the built-in administrator account.
const (
	AdminID       = "admin-001"
	AdminUniqueID = "ADMIN01"
	AdminFullName = "System Administrator"
)

// AdminUser returns the built-in administrator seeded on first run. The
// caller supplies the login and the already-hashed credential; plaintext
// never reaches this package.
func AdminUser(username, hashedCredential string) models.User {
	return models.User{
		ID:              AdminID,
		Username:        username,
		Credential:      hashedCredential,
		Role:            models.RoleAdmin,
		IsVerified:      true,
		IsSetupComplete: true,
		FullName:        AdminFullName,
		UniqueID:        AdminUniqueID,
	}
}

// DefaultConfig returns the site configuration a fresh installation
// starts with: the demo panorama, three contact groups, four developer
// entries, and three booking systems.
func DefaultConfig() models.AppConfig {
	return models.AppConfig{
		PanoramaURL: "https://tuju.pages.dev/showunit_only/index.htm",
		ContactGroups: []models.ContactGroup{
			{
				ID:    "g1",
				Title: "Lawyer",
				Items: []models.ContactEntry{
					{ID: "c1", Name: "Legal Eagles LLP", Details: "555-0123"},
				},
			},
			{
				ID:    "g2",
				Title: "Banker",
				Items: []models.ContactEntry{
					{ID: "c2", Name: "Global Trust Bank", Details: "555-0987"},
				},
			},
			{
				ID:    "g3",
				Title: "City Council",
				Items: []models.ContactEntry{
					{ID: "c3", Name: "Metro City Council", Details: "https://metro.city.gov"},
				},
			},
		},
		Developers: []models.DeveloperEntry{
			{ID: "d1", Name: "WCT", Description: "Engineering and Construction", URL: "https://www.wct.com.my"},
			{ID: "d2", Name: "EcoWorld", Description: "Creating Tomorrow & Beyond", URL: "https://ecoworld.my"},
			{ID: "d3", Name: "UEM Sunrise", Description: "Find your Happy", URL: "https://uemsunrise.com"},
			{ID: "d4", Name: "Sunway Property", Description: "Master Community Developer", URL: "https://sunwayproperty.com"},
		},
		Bookings: []models.BookingEntry{
			{ID: "b1", SystemName: "MHub", URL: "#"},
			{ID: "b2", SystemName: "IFCA", URL: "#"},
			{ID: "b3", SystemName: "GProp", URL: "#"},
		},
	}
}

// DefaultAnalytics returns seven days of synthetic visit counters ending
// at today, ordered by date ascending. Counts are pseudo-random within
// fixed per-panorama ranges; the records are read-only once stored.
func DefaultAnalytics(today time.Time) []models.AnalyticsRecord {
	records := make([]models.AnalyticsRecord, 0, 7)

	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		records = append(records, models.AnalyticsRecord{
			Date:     day.Format(time.DateOnly),
			Visitors: 50 + rand.Intn(200),
			PanoramaViews: map[string]int{
				"pano-001": 20 + rand.Intn(100),
				"pano-002": 10 + rand.Intn(80),
				"pano-003": 5 + rand.Intn(50),
			},
		})
	}

	return records
}
