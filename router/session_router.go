// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/controllers"
	"github.com/doracomply/doracomply/middlewares"
	"github.com/doracomply/doracomply/shared"
)

type SessionRouter struct {
	*echo.Group
}

// NewSessionRouter groups everything that needs an authenticated caller but
// no organization context yet.
func NewSessionRouter(
	apiV1Router APIV1Router,
	apiKeyService shared.APIKeyService,
	gleifController *controllers.GleifController,
) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("",
		middlewares.SessionMiddleware(apiKeyService),
	)

	sessionRouter.GET("/whoami/", controllers.Whoami)
	sessionRouter.POST("/gleif/validate/", gleifController.Validate)

	return SessionRouter{
		Group: sessionRouter,
	}
}
