// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package service

import (
	"context"
	"time"

	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
	"github.com/virtuoso-tours/go-tour-vault/internal/seed"
	"github.com/virtuoso-tours/go-tour-vault/internal/store"
	"github.com/virtuoso-tours/go-tour-vault/models"
)

// analyticsService is the concrete implementation of [AnalyticsService].
type analyticsService struct {
	repo   store.AnalyticsRepository
	now    func() time.Time
	logger *logger.Logger
}

// NewAnalyticsService constructs an [AnalyticsService] over the given
// repository.
func NewAnalyticsService(repo store.AnalyticsRepository, logger *logger.Logger) AnalyticsService {
	return &analyticsService{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

// Load implements [AnalyticsService]. The synthetic week is generated and
// persisted only when the store holds nothing at all; an empty stored list
// is respected as-is.
func (a *analyticsService) Load(ctx context.Context) ([]models.AnalyticsRecord, error) {
	records, found, err := a.repo.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		return records, nil
	}

	records = seed.DefaultAnalytics(a.now())
	if err := a.repo.SaveRecords(ctx, records); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Int("days", len(records)).Msg("seeded default analytics records")
	return records, nil
}
