// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
	"github.com/virtuoso-tours/go-tour-vault/models"
)

// configRepository is the [KeyValue]-backed implementation of
// [ConfigRepository]. It moves the raw envelope in and out of storage and
// leaves schema interpretation to the configuration service.
type configRepository struct {
	kv     KeyValue
	keys   Keyspace
	logger *logger.Logger
}

// NewConfigRepository constructs a [ConfigRepository] over the given
// adapter and keyspace.
func NewConfigRepository(kv KeyValue, keys Keyspace, logger *logger.Logger) ConfigRepository {
	logger.Debug().Msg("creating config repository")
	return &configRepository{
		kv:     kv,
		keys:   keys,
		logger: logger,
	}
}

// LoadEnvelope implements [ConfigRepository].
func (r *configRepository) LoadEnvelope(ctx context.Context) (models.ConfigEnvelope, bool, error) {
	log := logger.FromContext(ctx)

	raw, found, err := r.kv.Get(ctx, r.keys.Config())
	if err != nil {
		log.Err(err).Str("func", "*configRepository.LoadEnvelope").Msg("failed to read config document")
		return models.ConfigEnvelope{}, false, fmt.Errorf("failed to read config document: %w", err)
	}
	if !found {
		return models.ConfigEnvelope{}, false, nil
	}

	var envelope models.ConfigEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		log.Err(err).Str("func", "*configRepository.LoadEnvelope").Msg("failed to decode config document")
		return models.ConfigEnvelope{}, false, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return envelope, true, nil
}

// SaveEnvelope implements [ConfigRepository].
func (r *configRepository) SaveEnvelope(ctx context.Context, envelope models.ConfigEnvelope) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(envelope)
	if err != nil {
		log.Err(err).Str("func", "*configRepository.SaveEnvelope").Msg("failed to encode config document")
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	if err := r.kv.Set(ctx, r.keys.Config(), string(raw)); err != nil {
		log.Err(err).Str("func", "*configRepository.SaveEnvelope").Msg("failed to write config document")
		return fmt.Errorf("failed to write config document: %w", err)
	}

	return nil
}
