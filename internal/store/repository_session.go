// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package store

import (
	"context"
	"fmt"

	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
	"github.com/virtuoso-tours/go-tour-vault/models"
)

// sessionRepository is the [KeyValue]-backed implementation of
// [SessionRepository]. The session reference is stored as the bare user id
// string, the same scalar form earlier application revisions wrote, so an
// existing login survives the reimplementation.
type sessionRepository struct {
	kv     KeyValue
	keys   Keyspace
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] over the given
// adapter and keyspace.
func NewSessionRepository(kv KeyValue, keys Keyspace, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		kv:     kv,
		keys:   keys,
		logger: logger,
	}
}

// GetSession implements [SessionRepository].
func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	userID, found, err := r.kv.Get(ctx, r.keys.Session())
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("failed to read session reference")
		return models.Session{}, fmt.Errorf("failed to read session reference: %w", err)
	}
	if !found || userID == "" {
		return models.Session{}, ErrSessionNotFound
	}

	return models.Session{UserID: userID}, nil
}

// SetSession implements [SessionRepository].
func (r *sessionRepository) SetSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if err := r.kv.Set(ctx, r.keys.Session(), session.UserID); err != nil {
		log.Err(err).Str("func", "*sessionRepository.SetSession").Msg("failed to write session reference")
		return fmt.Errorf("failed to write session reference: %w", err)
	}

	return nil
}

// ClearSession implements [SessionRepository].
func (r *sessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := r.kv.Delete(ctx, r.keys.Session()); err != nil {
		log.Err(err).Str("func", "*sessionRepository.ClearSession").Msg("failed to clear session reference")
		return fmt.Errorf("failed to clear session reference: %w", err)
	}

	return nil
}
