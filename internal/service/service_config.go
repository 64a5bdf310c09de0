// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package service

import (
	"context"
	"fmt"

	"dario.cat/mergo"

	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
	"github.com/virtuoso-tours/go-tour-vault/internal/seed"
	"github.com/virtuoso-tours/go-tour-vault/internal/store"
	"github.com/virtuoso-tours/go-tour-vault/internal/utils"
	"github.com/virtuoso-tours/go-tour-vault/models"
)

// configService is the concrete implementation of [ConfigService]. It owns
// the one-time v1→v2 upgrade of the stored document and the field-level
// editing helpers, all of which are load-mutate-save round trips.
type configService struct {
	repo   store.ConfigRepository
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewConfigService constructs a [ConfigService] over the given repository.
func NewConfigService(repo store.ConfigRepository, logger *logger.Logger) ConfigService {
	return &configService{
		repo:   repo,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// Load implements [ConfigService]. A v1 document is upgraded and
// persisted before it is returned, so the transformation happens at most
// once per document; re-loading an upgraded document takes the v2 path
// untouched.
func (c *configService) Load(ctx context.Context) (models.AppConfig, error) {
	log := logger.FromContext(ctx)

	envelope, found, err := c.repo.LoadEnvelope(ctx)
	if err != nil {
		return models.AppConfig{}, err
	}
	if !found {
		return seed.DefaultConfig(), nil
	}

	switch envelope.Schema() {
	case models.ConfigSchemaV1:
		migrated := c.upgradeToGroups(envelope)
		if err := c.repo.SaveEnvelope(ctx, migrated.Envelope()); err != nil {
			log.Err(err).Msg("failed to persist upgraded config document")
			return models.AppConfig{}, fmt.Errorf("failed to persist upgraded config document: %w", err)
		}
		log.Info().Int("contacts", len(envelope.Contacts)).Msg("upgraded legacy config document to grouped contacts")
		return migrated, nil

	case models.ConfigSchemaV2:
		cfg := envelope.Config()
		if cfg.ContactGroups == nil {
			cfg.ContactGroups = seed.DefaultConfig().ContactGroups
		}
		return cfg, nil

	default:
		return models.AppConfig{}, fmt.Errorf("unknown config schema %d", envelope.Schema())
	}
}

// upgradeToGroups converts a v1 envelope to the v2 document: contacts are
// grouped by category (first-appearance order, "General" when the
// category is empty), each group gets a fresh id, and the flat list is
// dropped. An empty legacy list yields the default group set.
func (c *configService) upgradeToGroups(envelope models.ConfigEnvelope) models.AppConfig {
	groups := make([]models.ContactGroup, 0, 3)
	byTitle := make(map[string]int)

	for _, contact := range envelope.Contacts {
		title := contact.Category
		if title == "" {
			title = "General"
		}

		i, ok := byTitle[title]
		if !ok {
			groups = append(groups, models.ContactGroup{
				ID:    c.ids.Generate(),
				Title: title,
				Items: []models.ContactEntry{},
			})
			i = len(groups) - 1
			byTitle[title] = i
		}

		groups[i].Items = append(groups[i].Items, models.ContactEntry{
			ID:      contact.ID,
			Name:    contact.Name,
			Details: contact.Details,
		})
	}

	if len(groups) == 0 {
		groups = seed.DefaultConfig().ContactGroups
	}

	return models.AppConfig{
		PanoramaURL:   envelope.PanoramaURL,
		ContactGroups: groups,
		Developers:    envelope.Developers,
		Bookings:      envelope.Bookings,
	}
}

// Save implements [ConfigService].
func (c *configService) Save(ctx context.Context, cfg models.AppConfig) error {
	return c.repo.SaveEnvelope(ctx, cfg.Envelope())
}

// mutate runs one load-mutate-save round trip and returns the saved
// document. The mutation is only visible to subsequent loads once the
// save has succeeded.
func (c *configService) mutate(ctx context.Context, fn func(cfg *models.AppConfig) error) (models.AppConfig, error) {
	cfg, err := c.Load(ctx)
	if err != nil {
		return models.AppConfig{}, err
	}

	if err := fn(&cfg); err != nil {
		return models.AppConfig{}, err
	}

	if err := c.Save(ctx, cfg); err != nil {
		return models.AppConfig{}, err
	}

	return cfg, nil
}

// SetPanoramaURL implements [ConfigService].
func (c *configService) SetPanoramaURL(ctx context.Context, url string) (models.AppConfig, error) {
	return c.mutate(ctx, func(cfg *models.AppConfig) error {
		cfg.PanoramaURL = url
		return nil
	})
}

// UpdateDeveloper implements [ConfigService].
func (c *configService) UpdateDeveloper(ctx context.Context, id string, patch models.DeveloperEntry) (models.AppConfig, error) {
	return c.mutate(ctx, func(cfg *models.AppConfig) error {
		for i := range cfg.Developers {
			if cfg.Developers[i].ID == id {
				patch.ID = id // the id addresses the entry, it is never patched
				return mergo.Merge(&cfg.Developers[i], patch, mergo.WithOverride)
			}
		}
		return ErrConfigItemNotFound
	})
}

// UpdateBooking implements [ConfigService].
func (c *configService) UpdateBooking(ctx context.Context, id string, patch models.BookingEntry) (models.AppConfig, error) {
	return c.mutate(ctx, func(cfg *models.AppConfig) error {
		for i := range cfg.Bookings {
			if cfg.Bookings[i].ID == id {
				patch.ID = id
				return mergo.Merge(&cfg.Bookings[i], patch, mergo.WithOverride)
			}
		}
		return ErrConfigItemNotFound
	})
}

// AddContactGroup implements [ConfigService].
func (c *configService) AddContactGroup(ctx context.Context, title string) (models.AppConfig, error) {
	if title == "" {
		return models.AppConfig{}, ErrInvalidDataProvided
	}

	return c.mutate(ctx, func(cfg *models.AppConfig) error {
		cfg.ContactGroups = append(cfg.ContactGroups, models.ContactGroup{
			ID:    c.ids.Generate(),
			Title: title,
			Items: []models.ContactEntry{},
		})
		return nil
	})
}

// RenameContactGroup implements [ConfigService].
func (c *configService) RenameContactGroup(ctx context.Context, groupID, title string) (models.AppConfig, error) {
	return c.mutate(ctx, func(cfg *models.AppConfig) error {
		for i := range cfg.ContactGroups {
			if cfg.ContactGroups[i].ID == groupID {
				cfg.ContactGroups[i].Title = title
				return nil
			}
		}
		return ErrContactGroupNotFound
	})
}

// RemoveContactGroup implements [ConfigService].
func (c *configService) RemoveContactGroup(ctx context.Context, groupID string) (models.AppConfig, error) {
	return c.mutate(ctx, func(cfg *models.AppConfig) error {
		kept := cfg.ContactGroups[:0]
		for _, g := range cfg.ContactGroups {
			if g.ID != groupID {
				kept = append(kept, g)
			}
		}
		cfg.ContactGroups = kept
		return nil
	})
}

// AddContactItem implements [ConfigService].
func (c *configService) AddContactItem(ctx context.Context, groupID, name, details string) (models.AppConfig, error) {
	return c.mutate(ctx, func(cfg *models.AppConfig) error {
		for i := range cfg.ContactGroups {
			if cfg.ContactGroups[i].ID == groupID {
				cfg.ContactGroups[i].Items = append(cfg.ContactGroups[i].Items, models.ContactEntry{
					ID:      c.ids.Generate(),
					Name:    name,
					Details: details,
				})
				return nil
			}
		}
		return ErrContactGroupNotFound
	})
}

// UpdateContactItem implements [ConfigService].
func (c *configService) UpdateContactItem(ctx context.Context, groupID, itemID string, patch models.ContactEntry) (models.AppConfig, error) {
	return c.mutate(ctx, func(cfg *models.AppConfig) error {
		for i := range cfg.ContactGroups {
			if cfg.ContactGroups[i].ID != groupID {
				continue
			}
			items := cfg.ContactGroups[i].Items
			for j := range items {
				if items[j].ID == itemID {
					patch.ID = itemID
					return mergo.Merge(&items[j], patch, mergo.WithOverride)
				}
			}
			return ErrConfigItemNotFound
		}
		return ErrContactGroupNotFound
	})
}

// RemoveContactItem implements [ConfigService].
func (c *configService) RemoveContactItem(ctx context.Context, groupID, itemID string) (models.AppConfig, error) {
	return c.mutate(ctx, func(cfg *models.AppConfig) error {
		for i := range cfg.ContactGroups {
			if cfg.ContactGroups[i].ID != groupID {
				continue
			}
			items := cfg.ContactGroups[i].Items[:0]
			for _, item := range cfg.ContactGroups[i].Items {
				if item.ID != itemID {
					items = append(items, item)
				}
			}
			cfg.ContactGroups[i].Items = items
			return nil
		}
		return ErrContactGroupNotFound
	})
}
