// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/controllers"
	"github.com/doracomply/doracomply/middlewares"
	"github.com/doracomply/doracomply/shared"
)

type WebhookRouter struct {
	*echo.Group
}

func NewWebhookRouter(
	orgRouter OrgRouter,
	webhookController *controllers.WebhookController,
) WebhookRouter {
	webhooksRouter := orgRouter.Group.Group("/webhooks")
	webhooksRouter.GET("/", webhookController.List,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectWebhook, shared.ActionRead))
	webhooksRouter.POST("/", webhookController.Create,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectWebhook, shared.ActionCreate))

	webhookRouter := webhooksRouter.Group("/:webhookID")
	webhookRouter.GET("/deliveries/", webhookController.Deliveries,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectWebhook, shared.ActionRead))
	webhookRouter.POST("/test/", webhookController.Test,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectWebhook, shared.ActionUpdate))
	webhookRouter.PUT("/", webhookController.Update,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectWebhook, shared.ActionUpdate))
	webhookRouter.DELETE("/", webhookController.Delete,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectWebhook, shared.ActionDelete))

	return WebhookRouter{Group: webhookRouter}
}
