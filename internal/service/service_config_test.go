// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtuoso-tours/go-tour-vault/internal/seed"
	"github.com/virtuoso-tours/go-tour-vault/models"
)

func legacyEnvelope() models.ConfigEnvelope {
	return models.ConfigEnvelope{
		PanoramaURL: "https://legacy.example/pano",
		Contacts: []models.LegacyContactEntry{
			{ID: "c1", Category: "Lawyer", Name: "Legal Eagles LLP", Details: "555-0123"},
			{ID: "c2", Category: "Banker", Name: "Global Trust Bank", Details: "555-0987"},
			{ID: "c3", Category: "Lawyer", Name: "Second Opinion LLP", Details: "555-0456"},
			{ID: "c4", Category: "", Name: "Walk-in Desk", Details: "555-0000"},
		},
		Developers: []models.DeveloperEntry{{ID: "d1", Name: "WCT", Description: "Engineering and Construction"}},
		Bookings:   []models.BookingEntry{{ID: "b1", SystemName: "MHub", URL: "#"}},
	}
}

func TestConfigService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("returns defaults without persisting when nothing is stored", func(t *testing.T) {
		storages, services := newTestStack(t)

		cfg, err := services.Config.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, seed.DefaultConfig(), cfg)

		// defaults are substituted, not written
		_, found, err := storages.KV.Get(ctx, storages.Keys.Config())
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("upgrades a legacy document grouping contacts by category", func(t *testing.T) {
		storages, services := newTestStack(t)
		require.NoError(t, storages.Config.SaveEnvelope(ctx, legacyEnvelope()))

		cfg, err := services.Config.Load(ctx)
		require.NoError(t, err)

		require.Len(t, cfg.ContactGroups, 3)

		// first-appearance order of categories
		assert.Equal(t, "Lawyer", cfg.ContactGroups[0].Title)
		assert.Equal(t, "Banker", cfg.ContactGroups[1].Title)
		assert.Equal(t, "General", cfg.ContactGroups[2].Title)

		require.Len(t, cfg.ContactGroups[0].Items, 2)
		assert.Equal(t, "c1", cfg.ContactGroups[0].Items[0].ID)
		assert.Equal(t, "c3", cfg.ContactGroups[0].Items[1].ID)
		assert.Equal(t, []models.ContactEntry{{ID: "c2", Name: "Global Trust Bank", Details: "555-0987"}}, cfg.ContactGroups[1].Items)
		assert.Equal(t, "Walk-in Desk", cfg.ContactGroups[2].Items[0].Name)

		assert.NotEmpty(t, cfg.ContactGroups[0].ID)
		assert.Equal(t, "https://legacy.example/pano", cfg.PanoramaURL)
		assert.Equal(t, legacyEnvelope().Developers, cfg.Developers)
		assert.Equal(t, legacyEnvelope().Bookings, cfg.Bookings)
	})

	t.Run("persists the upgrade so it happens at most once", func(t *testing.T) {
		storages, services := newTestStack(t)
		require.NoError(t, storages.Config.SaveEnvelope(ctx, legacyEnvelope()))

		first, err := services.Config.Load(ctx)
		require.NoError(t, err)

		stored, found, err := storages.Config.LoadEnvelope(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, models.ConfigSchemaV2, stored.Schema())
		assert.Nil(t, stored.Contacts)

		// the second load takes the v2 path: same ids, same order
		second, err := services.Config.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("an empty legacy contact list upgrades to the default groups", func(t *testing.T) {
		storages, services := newTestStack(t)

		envelope := legacyEnvelope()
		envelope.Contacts = []models.LegacyContactEntry{}
		require.NoError(t, storages.Config.SaveEnvelope(ctx, envelope))

		cfg, err := services.Config.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, seed.DefaultConfig().ContactGroups, cfg.ContactGroups)
	})

	t.Run("substitutes default groups in a v2 document missing them", func(t *testing.T) {
		storages, services := newTestStack(t)

		require.NoError(t, storages.Config.SaveEnvelope(ctx, models.ConfigEnvelope{
			PanoramaURL: "https://v2.example/pano",
		}))

		cfg, err := services.Config.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "https://v2.example/pano", cfg.PanoramaURL)
		assert.Equal(t, seed.DefaultConfig().ContactGroups, cfg.ContactGroups)
	})
}

func TestConfigService_FieldHelpers(t *testing.T) {
	ctx := context.Background()

	t.Run("set panorama url", func(t *testing.T) {
		_, services := newTestStack(t)

		cfg, err := services.Config.SetPanoramaURL(ctx, "https://new.example/tour")
		require.NoError(t, err)
		assert.Equal(t, "https://new.example/tour", cfg.PanoramaURL)

		reloaded, err := services.Config.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "https://new.example/tour", reloaded.PanoramaURL)
	})

	t.Run("update developer patches non-zero fields only", func(t *testing.T) {
		_, services := newTestStack(t)

		cfg, err := services.Config.UpdateDeveloper(ctx, "d1", models.DeveloperEntry{Name: "WCT Berhad"})
		require.NoError(t, err)

		assert.Equal(t, "WCT Berhad", cfg.Developers[0].Name)
		// untouched fields survive the patch
		assert.Equal(t, "Engineering and Construction", cfg.Developers[0].Description)
		assert.Equal(t, "d1", cfg.Developers[0].ID)
	})

	t.Run("update booking with unknown id fails", func(t *testing.T) {
		_, services := newTestStack(t)

		_, err := services.Config.UpdateBooking(ctx, "missing", models.BookingEntry{URL: "https://x"})
		assert.ErrorIs(t, err, ErrConfigItemNotFound)
	})

	t.Run("contact group lifecycle", func(t *testing.T) {
		_, services := newTestStack(t)

		cfg, err := services.Config.AddContactGroup(ctx, "Agents")
		require.NoError(t, err)
		group := cfg.ContactGroups[len(cfg.ContactGroups)-1]
		assert.Equal(t, "Agents", group.Title)
		assert.NotEmpty(t, group.ID)
		assert.Empty(t, group.Items)

		cfg, err = services.Config.RenameContactGroup(ctx, group.ID, "Sales Agents")
		require.NoError(t, err)
		assert.Equal(t, "Sales Agents", cfg.ContactGroups[len(cfg.ContactGroups)-1].Title)

		cfg, err = services.Config.AddContactItem(ctx, group.ID, "Jane Agent", "555-0199")
		require.NoError(t, err)
		items := cfg.ContactGroups[len(cfg.ContactGroups)-1].Items
		require.Len(t, items, 1)
		assert.Equal(t, "Jane Agent", items[0].Name)

		cfg, err = services.Config.UpdateContactItem(ctx, group.ID, items[0].ID, models.ContactEntry{Details: "555-0200"})
		require.NoError(t, err)
		updated := cfg.ContactGroups[len(cfg.ContactGroups)-1].Items[0]
		assert.Equal(t, "Jane Agent", updated.Name)
		assert.Equal(t, "555-0200", updated.Details)

		cfg, err = services.Config.RemoveContactItem(ctx, group.ID, items[0].ID)
		require.NoError(t, err)
		assert.Empty(t, cfg.ContactGroups[len(cfg.ContactGroups)-1].Items)

		before := len(cfg.ContactGroups)
		cfg, err = services.Config.RemoveContactGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Len(t, cfg.ContactGroups, before-1)
	})

	t.Run("adding a group with an empty title fails", func(t *testing.T) {
		_, services := newTestStack(t)

		_, err := services.Config.AddContactGroup(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("item edits on an unknown group fail", func(t *testing.T) {
		_, services := newTestStack(t)

		_, err := services.Config.AddContactItem(ctx, "missing", "x", "y")
		assert.ErrorIs(t, err, ErrContactGroupNotFound)

		_, err = services.Config.UpdateContactItem(ctx, "missing", "c1", models.ContactEntry{Name: "x"})
		assert.ErrorIs(t, err, ErrContactGroupNotFound)
	})

	t.Run("updating an unknown item in a known group fails", func(t *testing.T) {
		_, services := newTestStack(t)

		_, err := services.Config.UpdateContactItem(ctx, "g1", "missing", models.ContactEntry{Name: "x"})
		assert.ErrorIs(t, err, ErrConfigItemNotFound)
	})

	t.Run("removing an unknown group or item is not an error", func(t *testing.T) {
		_, services := newTestStack(t)

		_, err := services.Config.RemoveContactGroup(ctx, "missing")
		assert.NoError(t, err)

		_, err = services.Config.RemoveContactItem(ctx, "g1", "missing")
		assert.NoError(t, err)
	})
}
