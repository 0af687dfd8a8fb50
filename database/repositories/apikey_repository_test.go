// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestAPIKeyRepositoryGetByTokenHash(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAPIKeyRepository(db)

	t.Run("found", func(t *testing.T) {
		id := uuid.New()
		userID := uuid.New()
		orgID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "created_at", "user_id", "description", "fingerprint", "token", "scopes", "org_id"}).
			AddRow(id, time.Now(), userID, "ci token", "abc123", "hashed", "read manage", orgID)
		mock.ExpectQuery(`SELECT (.+) FROM "api_keys" WHERE token = \$1`).
			WithArgs("hashed", 1).
			WillReturnRows(rows)

		key, err := repo.GetByTokenHash("hashed")
		require.NoError(t, err)
		assert.Equal(t, id, key.ID)
		assert.Equal(t, "read manage", key.Scopes)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM "api_keys" WHERE token = \$1`).
			WithArgs("unknown", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByTokenHash("unknown")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyRepositoryMarkAsLastUsedNow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAPIKeyRepository(db)

	id := uuid.New()
	mock.ExpectExec(`UPDATE "api_keys" SET "last_used_at"=\$1`).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkAsLastUsedNow(id)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
