// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package middlewares

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/doracomply/doracomply/accesscontrol"
	"github.com/doracomply/doracomply/shared"
)

func apiKeyToken(req *http.Request) string {
	if t := req.Header.Get("X-API-Key"); t != "" {
		return t
	}
	if token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer "); ok {
		return token
	}
	return ""
}

func SessionMiddleware(apiKeyService shared.APIKeyService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			adminTokenHeader := ctx.Request().Header.Get("X-Admin-Token")
			if adminTokenHeader != "" {
				adminToken := os.Getenv("ADMIN_TOKEN")
				if adminToken == "" || subtle.ConstantTimeCompare([]byte(adminTokenHeader), []byte(adminToken)) != 1 {
					return echo.NewHTTPError(401, "invalid admin token")
				}
				slog.Warn("admin token header is set, using it to create session")
				shared.SetSession(ctx, accesscontrol.NewSession(adminTokenHeader, []string{}))
				return next(ctx)
			}

			token := apiKeyToken(ctx.Request())
			if token == "" {
				// no credentials at all - a special session gets set, downstream
				// middlewares decide if the request is still allowed
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			apiKey, err := apiKeyService.VerifyToken(token)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(401, "token provided but not found in database").SetInternal(err)
				}
				sentry.CurrentHub().CaptureException(err)
				return echo.NewHTTPError(500, "unexpected error").WithInternal(err)
			}

			shared.SetSession(ctx, accesscontrol.NewSession(apiKey.GetUserID(), strings.Fields(apiKey.Scopes)))
			return next(ctx)
		}
	}
}
