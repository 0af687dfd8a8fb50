// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package middlewares

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/shared"
	"github.com/doracomply/doracomply/utils"
)

// OrganizationMiddleware resolves the :organization path parameter, checks
// that the session user is a member and binds the org scoped RBAC to the
// request context. Denied access answers 404, membership is never disclosed.
func OrganizationMiddleware(rbacProvider shared.RBACProvider, orgService shared.OrgService) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			orgSlug, err := shared.GetOrgSlug(ctx)
			if err != nil {
				slog.Error("could not get organization from url", "err", err)
				return echo.NewHTTPError(400, "invalid organization")
			}

			org, err := orgService.ReadBySlug(orgSlug)
			if err != nil {
				return echo.NewHTTPError(404, "organization not found").WithInternal(err)
			}

			domainRBAC := rbacProvider.GetDomainRBAC(org.ID.String())

			session := shared.GetSession(ctx)
			allowed, err := domainRBAC.HasAccess(session.GetUserID())
			if err != nil {
				return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
			}

			if !allowed {
				slog.Warn("access denied in OrganizationMiddleware", "user", session.GetUserID(), "organization", orgSlug)
				return echo.NewHTTPError(404, "organization not found")
			}

			shared.SetOrg(ctx, *org)
			shared.SetRBAC(ctx, domainRBAC)
			shared.SetOrgSlug(ctx, orgSlug)
			return next(ctx)
		}
	}
}

func OrganizationAccessControlMiddleware(obj shared.Object, act shared.Action) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			rbac := shared.GetRBAC(ctx)
			user := shared.GetSession(ctx).GetUserID()

			allowed, err := rbac.IsAllowed(user, obj, act)
			if err != nil {
				return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
			}

			if !allowed {
				slog.Warn("access denied in OrganizationAccessControlMiddleware", "user", user, "object", obj, "action", act)
				return echo.NewHTTPError(404, "organization not found")
			}

			return next(ctx)
		}
	}
}

func NeededScope(neededScopes []string) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c shared.Context) error {
			userScopes := shared.GetSession(c).GetScopes()

			if !utils.ContainsAll(userScopes, neededScopes) {
				slog.Warn("user does not have the required scopes", "neededScopes", neededScopes, "userScopes", userScopes)
				return echo.NewHTTPError(403, fmt.Sprintf("your api key does not have the required scope, needed scopes: %s", strings.Join(neededScopes, ", ")))
			}

			return next(c)
		}
	}
}
