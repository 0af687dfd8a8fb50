// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/controllers"
	"github.com/doracomply/doracomply/middlewares"
	"github.com/doracomply/doracomply/shared"
)

type RegisterRouter struct {
	*echo.Group
}

// NewRegisterRouter wires the register of information endpoints.
func NewRegisterRouter(
	orgRouter OrgRouter,
	registerController *controllers.RegisterController,
) RegisterRouter {
	registerRouter := orgRouter.Group.Group("/register")
	registerRouter.GET("/", registerController.List,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectRegister, shared.ActionRead))
	registerRouter.GET("/export/", registerController.Export,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectRegister, shared.ActionRead))
	registerRouter.POST("/", registerController.Create,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectRegister, shared.ActionCreate))
	registerRouter.POST("/populate-from-soc2/", registerController.PopulateFromSOC2,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectRegister, shared.ActionCreate))
	registerRouter.DELETE("/:entryID/", registerController.Delete,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectRegister, shared.ActionDelete))

	return RegisterRouter{Group: registerRouter}
}
