// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/virtuoso-tours/go-tour-vault/internal/crypto"
	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
	"github.com/virtuoso-tours/go-tour-vault/internal/store"
	"github.com/virtuoso-tours/go-tour-vault/internal/utils"
	"github.com/virtuoso-tours/go-tour-vault/models"
)

// accountService is the concrete implementation of [AccountService]. It
// combines the user and session repositories with the password hasher and
// owns the legacy-credential upgrade performed at login.
type accountService struct {
	users    store.UserRepository
	sessions store.SessionRepository
	hasher   crypto.PasswordHasher
	ids      *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewAccountService constructs an [AccountService] wired to the given
// repositories and hasher.
func NewAccountService(users store.UserRepository, sessions store.SessionRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AccountService {
	return &accountService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Register implements [AccountService]. New accounts start unverified,
// setup-incomplete, and with the USER role.
func (a *accountService) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := a.users.FindUserByUsername(ctx, username); err == nil {
		log.Error().Str("username", username).Msg("username already taken")
		return models.User{}, ErrUsernameAlreadyTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("username lookup failed: %w", err)
	}

	credential, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("credential hashing failed")
		return models.User{}, fmt.Errorf("credential hashing failed: %w", err)
	}

	user := models.User{
		ID:              a.ids.Generate(),
		Username:        username,
		Credential:      credential,
		Role:            models.RoleUser,
		IsVerified:      false,
		IsSetupComplete: false,
	}

	if err := a.users.SaveUser(ctx, user); err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login implements [AccountService]. A credential matched through a legacy
// form is re-hashed and persisted before the session is established, so
// the plaintext never survives a successful login.
func (a *accountService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// same outcome as a wrong password
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, legacy := a.hasher.Verify(password, foundUser.Credential)
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}

	if legacy {
		upgraded, err := a.hasher.Hash(password)
		if err != nil {
			log.Err(err).Str("user_id", foundUser.ID).Msg("legacy credential re-hashing failed")
			return models.User{}, fmt.Errorf("legacy credential re-hashing failed: %w", err)
		}
		foundUser.Credential = upgraded

		// persist the upgrade before establishing the session
		if err := a.users.SaveUser(ctx, foundUser); err != nil {
			log.Err(err).Str("user_id", foundUser.ID).Msg("legacy credential upgrade failed")
			return models.User{}, fmt.Errorf("legacy credential upgrade failed: %w", err)
		}
		log.Info().Str("user_id", foundUser.ID).Msg("upgraded legacy credential")
	}

	if err := a.sessions.SetSession(ctx, models.Session{UserID: foundUser.ID}); err != nil {
		log.Err(err).Str("user_id", foundUser.ID).Msg("failed to establish session")
		return models.User{}, fmt.Errorf("failed to establish session: %w", err)
	}

	return foundUser, nil
}

// Logout implements [AccountService].
func (a *accountService) Logout(ctx context.Context) error {
	return a.sessions.ClearSession(ctx)
}

// CurrentUser implements [AccountService].
func (a *accountService) CurrentUser(ctx context.Context) (models.User, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.User{}, ErrNoActiveSession
		}
		return models.User{}, fmt.Errorf("failed to read session: %w", err)
	}

	user, err := a.users.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// the referenced account was deleted under the session
			return models.User{}, ErrNoActiveSession
		}
		return models.User{}, fmt.Errorf("failed to resolve session user: %w", err)
	}

	return user, nil
}

// ChangePassword implements [AccountService].
func (a *accountService) ChangePassword(ctx context.Context, userID, newPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	if newPassword == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	credential, err := a.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("credential hashing failed")
		return models.User{}, fmt.Errorf("credential hashing failed: %w", err)
	}

	user.Credential = credential
	if err := a.users.SaveUser(ctx, user); err != nil {
		log.Err(err).Str("user_id", userID).Msg("failed to persist new credential")
		return models.User{}, fmt.Errorf("failed to persist new credential: %w", err)
	}

	return user, nil
}

// SaveUser implements [AccountService]: a full-record replace-by-id used
// by profile editing and administrative updates.
func (a *accountService) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	if err := a.users.SaveUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	return user, nil
}

// CompleteSetup implements [AccountService].
func (a *accountService) CompleteSetup(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user.IsSetupComplete = true
	user.IsVerified = true
	if user.UniqueID == "" {
		user.UniqueID = utils.GenerateUniqueID()
	}

	if err := a.users.SaveUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("failed to complete setup: %w", err)
	}

	return user, nil
}

// DeleteUser implements [AccountService].
func (a *accountService) DeleteUser(ctx context.Context, userID string) error {
	return a.users.DeleteUser(ctx, userID)
}

// ListUsers implements [AccountService].
func (a *accountService) ListUsers(ctx context.Context) ([]models.User, error) {
	return a.users.ListUsers(ctx)
}
