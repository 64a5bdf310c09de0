// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Virtuoso Tours

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtuoso-tours/go-tour-vault/internal/logger"
)

func newTestKeyValue(t *testing.T) (*sqliteKeyValue, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	kv := &sqliteKeyValue{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return kv, mock, db
}

func TestSQLiteKeyValue_Get_Found(t *testing.T) {
	kv, mock, db := newTestKeyValue(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow(`["doc"]`)
	mock.ExpectQuery("SELECT value").
		WithArgs("virtuoso_users").
		WillReturnRows(rows)

	value, found, err := kv.Get(context.Background(), "virtuoso_users")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["doc"]`, value)
}

func TestSQLiteKeyValue_Get_Missing(t *testing.T) {
	kv, mock, db := newTestKeyValue(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs("virtuoso_session").
		WillReturnError(sql.ErrNoRows)

	value, found, err := kv.Get(context.Background(), "virtuoso_session")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestSQLiteKeyValue_Get_DriverError(t *testing.T) {
	kv, mock, db := newTestKeyValue(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs("virtuoso_users").
		WillReturnError(errors.New("disk I/O error"))

	_, _, err := kv.Get(context.Background(), "virtuoso_users")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLiteKeyValue_Set(t *testing.T) {
	kv, mock, db := newTestKeyValue(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("virtuoso_config", `{"panoramaUrl":""}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := kv.Set(context.Background(), "virtuoso_config", `{"panoramaUrl":""}`)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKeyValue_Set_DriverError(t *testing.T) {
	kv, mock, db := newTestKeyValue(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("database or disk is full"))

	err := kv.Set(context.Background(), "virtuoso_config", "{}")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteKeyValue_Delete(t *testing.T) {
	kv, mock, db := newTestKeyValue(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv_entries").
		WithArgs("virtuoso_session").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := kv.Delete(context.Background(), "virtuoso_session")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
