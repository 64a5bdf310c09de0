// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package models

// AnalyticsRecord holds the visit counters for a single calendar day.
// Records are read-only after seeding and are kept ordered by date
// ascending, one record per date.
type AnalyticsRecord struct {
	// Date is the ISO calendar date ("2006-01-02") the counters belong to.
	Date string `json:"date"`

	// Visitors is the number of distinct visitors counted that day.
	Visitors int `json:"visitors"`

	// PanoramaViews maps a panorama id to the number of views it received.
	PanoramaViews map[string]int `json:"panoramaViews"`
}
