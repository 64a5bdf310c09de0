// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtuoso-tours/go-tour-vault/models"
)

func TestAnalyticsService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds a week of records on first load", func(t *testing.T) {
		_, services := newTestStack(t)

		records, err := services.Analytics.Load(ctx)
		require.NoError(t, err)
		require.Len(t, records, 7)

		today := time.Now()
		for i, record := range records {
			wantDate := today.AddDate(0, 0, i-6).Format(time.DateOnly)
			assert.Equal(t, wantDate, record.Date)

			assert.GreaterOrEqual(t, record.Visitors, 50)
			assert.Less(t, record.Visitors, 250)
			assert.Len(t, record.PanoramaViews, 3)
			assert.GreaterOrEqual(t, record.PanoramaViews["pano-001"], 20)
			assert.GreaterOrEqual(t, record.PanoramaViews["pano-002"], 10)
			assert.GreaterOrEqual(t, record.PanoramaViews["pano-003"], 5)
		}
	})

	t.Run("the seeded records are persisted and stable", func(t *testing.T) {
		_, services := newTestStack(t)

		first, err := services.Analytics.Load(ctx)
		require.NoError(t, err)

		second, err := services.Analytics.Load(ctx)
		require.NoError(t, err)

		// the synthetic counters are generated once, not per read
		assert.Equal(t, first, second)
	})

	t.Run("stored records are returned verbatim", func(t *testing.T) {
		storages, services := newTestStack(t)

		stored := []models.AnalyticsRecord{
			{Date: "2026-08-30", Visitors: 12, PanoramaViews: map[string]int{"pano-001": 3}},
		}
		require.NoError(t, storages.Analytics.SaveRecords(ctx, stored))

		records, err := services.Analytics.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored, records)
	})
}
