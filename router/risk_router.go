// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/controllers"
	"github.com/doracomply/doracomply/middlewares"
	"github.com/doracomply/doracomply/shared"
)

type RiskRouter struct {
	*echo.Group
}

func NewRiskRouter(
	orgRouter OrgRouter,
	riskController *controllers.RiskController,
) RiskRouter {
	risksRouter := orgRouter.Group.Group("/risks")
	risksRouter.GET("/", riskController.List,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectRisk, shared.ActionRead))
	risksRouter.GET("/heat-map/", riskController.HeatMap,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectRisk, shared.ActionRead))
	risksRouter.POST("/", riskController.Create,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectRisk, shared.ActionCreate))

	riskRouter := risksRouter.Group("/:riskID")
	riskRouter.GET("/", riskController.Read,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectRisk, shared.ActionRead))
	riskRouter.PATCH("/", riskController.Update,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectRisk, shared.ActionUpdate))
	riskRouter.DELETE("/", riskController.Delete,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectRisk, shared.ActionDelete))

	return RiskRouter{Group: riskRouter}
}
