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

// analyticsRepository is the [KeyValue]-backed implementation of
// [AnalyticsRepository].
type analyticsRepository struct {
	kv     KeyValue
	keys   Keyspace
	logger *logger.Logger
}

// NewAnalyticsRepository constructs an [AnalyticsRepository] over the
// given adapter and keyspace.
func NewAnalyticsRepository(kv KeyValue, keys Keyspace, logger *logger.Logger) AnalyticsRepository {
	logger.Debug().Msg("creating analytics repository")
	return &analyticsRepository{
		kv:     kv,
		keys:   keys,
		logger: logger,
	}
}

// ListRecords implements [AnalyticsRepository].
func (r *analyticsRepository) ListRecords(ctx context.Context) ([]models.AnalyticsRecord, bool, error) {
	log := logger.FromContext(ctx)

	raw, found, err := r.kv.Get(ctx, r.keys.Analytics())
	if err != nil {
		log.Err(err).Str("func", "*analyticsRepository.ListRecords").Msg("failed to read analytics document")
		return nil, false, fmt.Errorf("failed to read analytics document: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	var records []models.AnalyticsRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Err(err).Str("func", "*analyticsRepository.ListRecords").Msg("failed to decode analytics document")
		return nil, false, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return records, true, nil
}

// SaveRecords implements [AnalyticsRepository].
func (r *analyticsRepository) SaveRecords(ctx context.Context, records []models.AnalyticsRecord) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(records)
	if err != nil {
		log.Err(err).Str("func", "*analyticsRepository.SaveRecords").Msg("failed to encode analytics document")
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	if err := r.kv.Set(ctx, r.keys.Analytics(), string(raw)); err != nil {
		log.Err(err).Str("func", "*analyticsRepository.SaveRecords").Msg("failed to write analytics document")
		return fmt.Errorf("failed to write analytics document: %w", err)
	}

	return nil
}
