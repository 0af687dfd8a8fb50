// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/doracomply/doracomply/accesscontrol"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
)

type fakeAPIKeyService struct {
	apiKey models.APIKey
	err    error
}

func (f fakeAPIKeyService) VerifyToken(token string) (models.APIKey, error) {
	return f.apiKey, f.err
}

func (f fakeAPIKeyService) CreateToken(orgID uuid.UUID, userID string, request dtos.APIKeyCreateRequest) (models.APIKey, string, error) {
	return models.APIKey{}, "", nil
}

func TestSessionMiddleware(t *testing.T) {
	newContext := func(header, value string) (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(header, value)
		}
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("should set the correct scopes and userID using an api key", func(t *testing.T) {
		userID := uuid.New()
		mw := SessionMiddleware(fakeAPIKeyService{apiKey: models.APIKey{
			UserID: userID,
			Scopes: "read manage",
		}})

		ctx, _ := newContext("X-API-Key", "some-token")

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			sess := shared.GetSession(ctx)

			assert.Equal(t, userID.String(), sess.GetUserID())
			assert.ElementsMatch(t, []string{"read", "manage"}, sess.GetScopes())
			return nil
		})

		require.NoError(t, handler(ctx))
		assert.True(t, called)
	})

	t.Run("should accept a bearer token in the authorization header", func(t *testing.T) {
		userID := uuid.New()
		mw := SessionMiddleware(fakeAPIKeyService{apiKey: models.APIKey{
			UserID: userID,
			Scopes: "read",
		}})

		ctx, _ := newContext("Authorization", "Bearer some-token")

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, userID.String(), shared.GetSession(ctx).GetUserID())
			return nil
		})

		require.NoError(t, handler(ctx))
		assert.True(t, called)
	})

	t.Run("should set no session if no credentials are provided", func(t *testing.T) {
		mw := SessionMiddleware(fakeAPIKeyService{})

		ctx, _ := newContext("", "")

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, accesscontrol.NoSession, shared.GetSession(ctx))
			return nil
		})

		require.NoError(t, handler(ctx))
		assert.True(t, called)
	})

	t.Run("should answer 401 for an unknown token", func(t *testing.T) {
		mw := SessionMiddleware(fakeAPIKeyService{err: gorm.ErrRecordNotFound})

		ctx, _ := newContext("X-API-Key", "unknown-token")

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			return nil
		})

		err := handler(ctx)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
		assert.False(t, called)
	})

	t.Run("should set the session using a matching admin token header", func(t *testing.T) {
		t.Setenv("ADMIN_TOKEN", "admin_token_value")
		mw := SessionMiddleware(fakeAPIKeyService{})

		ctx, _ := newContext("X-Admin-Token", "admin_token_value")

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			sess := shared.GetSession(ctx)

			assert.Equal(t, "admin_token_value", sess.GetUserID())
			assert.ElementsMatch(t, []string{}, sess.GetScopes())
			return nil
		})

		require.NoError(t, handler(ctx))
		assert.True(t, called)
	})

	t.Run("should answer 401 for a wrong admin token", func(t *testing.T) {
		t.Setenv("ADMIN_TOKEN", "admin_token_value")
		mw := SessionMiddleware(fakeAPIKeyService{})

		ctx, _ := newContext("X-Admin-Token", "some-user-uuid")

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			return nil
		})

		err := handler(ctx)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
		assert.False(t, called)
	})

	t.Run("should answer 401 for the admin token header if no admin token is configured", func(t *testing.T) {
		t.Setenv("ADMIN_TOKEN", "")
		mw := SessionMiddleware(fakeAPIKeyService{})

		ctx, _ := newContext("X-Admin-Token", "anything")

		handler := mw(func(ctx echo.Context) error {
			return nil
		})

		err := handler(ctx)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
	})
}
