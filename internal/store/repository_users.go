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

// userRepository is the [KeyValue]-backed implementation of
// [UserRepository]. The whole account list lives as one JSON array under
// the users key; every mutation is a read-modify-write of that document.
type userRepository struct {
	kv     KeyValue
	keys   Keyspace
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] over the given adapter
// and keyspace.
func NewUserRepository(kv KeyValue, keys Keyspace, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		kv:     kv,
		keys:   keys,
		logger: logger,
	}
}

// ListUsers implements [UserRepository]. An absent document yields an
// empty slice, matching the first-run state before seeding.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	raw, found, err := r.kv.Get(ctx, r.keys.Users())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to read users document")
		return nil, fmt.Errorf("failed to read users document: %w", err)
	}
	if !found {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to decode users document")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return users, nil
}

// SaveUsers implements [UserRepository].
func (r *userRepository) SaveUsers(ctx context.Context, users []models.User) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(users)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SaveUsers").Msg("failed to encode users document")
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	if err := r.kv.Set(ctx, r.keys.Users(), string(raw)); err != nil {
		log.Err(err).Str("func", "*userRepository.SaveUsers").Msg("failed to write users document")
		return fmt.Errorf("failed to write users document: %w", err)
	}

	return nil
}

// SaveUser implements [UserRepository]: replace-by-id when the account
// exists, append otherwise.
func (r *userRepository) SaveUser(ctx context.Context, user models.User) error {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, user)
	}

	return r.SaveUsers(ctx, users)
}

// FindUserByID implements [UserRepository].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// FindUserByUsername implements [UserRepository]. When duplicates exist
// (possible in data written by earlier revisions, which never enforced
// uniqueness), the first stored match wins.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// DeleteUser implements [UserRepository].
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return err
	}

	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}

	return r.SaveUsers(ctx, kept)
}
