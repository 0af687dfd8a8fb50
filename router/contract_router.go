// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/controllers"
	"github.com/doracomply/doracomply/middlewares"
	"github.com/doracomply/doracomply/shared"
)

type ContractRouter struct {
	*echo.Group
}

func NewContractRouter(
	orgRouter OrgRouter,
	contractController *controllers.ContractController,
) ContractRouter {
	contractsRouter := orgRouter.Group.Group("/contracts")
	contractsRouter.GET("/", contractController.List,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectContract, shared.ActionRead))
	contractsRouter.POST("/", contractController.Create,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectContract, shared.ActionCreate))

	contractRouter := contractsRouter.Group("/:contractRef")
	contractRouter.GET("/", contractController.Read,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectContract, shared.ActionRead))
	contractRouter.GET("/compliance/", contractController.Compliance,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectContract, shared.ActionRead))
	contractRouter.PATCH("/", contractController.Update,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectContract, shared.ActionUpdate))
	contractRouter.DELETE("/", contractController.Delete,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectContract, shared.ActionDelete))

	return ContractRouter{Group: contractRouter}
}
