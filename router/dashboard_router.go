// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/controllers"
	"github.com/doracomply/doracomply/middlewares"
	"github.com/doracomply/doracomply/shared"
)

type DashboardRouter struct {
	*echo.Group
}

// NewDashboardRouter registers the overview page widgets. They only ever read
// organization data, so organization read access is enough.
func NewDashboardRouter(
	orgRouter OrgRouter,
	dashboardController *controllers.DashboardController,
	riskController *controllers.RiskController,
) DashboardRouter {
	dashboardRouter := orgRouter.Group.Group("/dashboard",
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectOrganization, shared.ActionRead))

	dashboardRouter.GET("/risk-heat-map/", riskController.HeatMap)
	dashboardRouter.GET("/contract-expiry/", dashboardController.ContractExpiry)
	dashboardRouter.GET("/vendor-criticality/", dashboardController.VendorCriticality)
	dashboardRouter.GET("/compliance-coverage/", dashboardController.ComplianceCoverage)
	dashboardRouter.GET("/open-risks/", dashboardController.OpenRisks)
	dashboardRouter.GET("/risk-history/", dashboardController.RiskHistory)

	return DashboardRouter{Group: dashboardRouter}
}
