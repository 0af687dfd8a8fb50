// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matching constraint", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_vendors_org_lei"}
		assert.True(t, isUniqueViolation(pgErr, "idx_vendors_org_lei"))
		// wrapped errors are unwrapped
		assert.True(t, isUniqueViolation(fmt.Errorf("create failed: %w", pgErr), "idx_vendors_org_lei"))
	})

	t.Run("different constraint", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_contracts_org_ref"}
		assert.False(t, isUniqueViolation(pgErr, "idx_vendors_org_lei"))
	})

	t.Run("empty constraint matches any unique violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_contracts_org_ref"}
		assert.True(t, isUniqueViolation(pgErr, ""))
	})

	t.Run("other sqlstate", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503"}
		assert.False(t, isUniqueViolation(pgErr, ""))
	})

	t.Run("non postgres error", func(t *testing.T) {
		assert.False(t, isUniqueViolation(errors.New("duplicate key value"), ""))
		assert.False(t, isUniqueViolation(nil, ""))
	})
}
