// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/controllers"
	"github.com/doracomply/doracomply/middlewares"
	"github.com/doracomply/doracomply/shared"
)

type OrgRouter struct {
	*echo.Group
}

func NewOrgRouter(
	sessionGroup SessionRouter,
	orgController *controllers.OrgController,
	notificationController *controllers.NotificationController,
	apiKeyController *controllers.APIKeyController,
	copilotController *controllers.CopilotController,
	orgService shared.OrgService,
	casbinRBACProvider shared.RBACProvider,
) OrgRouter {
	orgRouter := sessionGroup.Group.Group("/organizations")
	orgRouter.GET("/", orgController.List)
	orgRouter.POST("/", orgController.Create, middlewares.NeededScope([]string{"manage"}))

	/**
	Organization scoped router
	All routes below this line are scoped to a specific organization.
	*/
	organizationRouter := orgRouter.Group("/:organization",
		middlewares.OrganizationMiddleware(casbinRBACProvider, orgService),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectOrganization, shared.ActionRead))

	organizationRouter.GET("/", orgController.Read)
	organizationRouter.GET("/members/", orgController.Members)
	organizationRouter.PATCH("/", orgController.Update,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectOrganization, shared.ActionUpdate))
	organizationRouter.DELETE("/", orgController.Delete,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectOrganization, shared.ActionDelete))

	organizationRouter.GET("/notifications/", notificationController.List)
	organizationRouter.POST("/notifications/:notificationID/read/", notificationController.MarkRead)
	organizationRouter.POST("/notifications/read-all/", notificationController.MarkAllRead)

	apiKeyRouter := organizationRouter.Group("/api-keys", middlewares.NeededScope([]string{"manage"}))
	apiKeyRouter.GET("/", apiKeyController.List)
	apiKeyRouter.POST("/", apiKeyController.Create)
	apiKeyRouter.DELETE("/:apiKeyID/", apiKeyController.Delete)

	organizationRouter.POST("/copilot/chat/", copilotController.Chat)

	return OrgRouter{Group: organizationRouter}
}
