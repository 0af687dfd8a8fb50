// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/controllers"
	"github.com/doracomply/doracomply/middlewares"
	"github.com/doracomply/doracomply/shared"
)

type VendorRouter struct {
	*echo.Group
}

func NewVendorRouter(
	orgRouter OrgRouter,
	vendorController *controllers.VendorController,
	vendorRepository shared.VendorRepository,
) VendorRouter {
	vendorsRouter := orgRouter.Group.Group("/vendors")
	vendorsRouter.GET("/", vendorController.List,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectVendor, shared.ActionRead))
	vendorsRouter.POST("/", vendorController.Create,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectVendor, shared.ActionCreate))

	vendorRouter := vendorsRouter.Group("/:vendorSlug",
		middlewares.VendorMiddleware(vendorRepository))

	vendorRouter.GET("/", vendorController.Read,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectVendor, shared.ActionRead))
	vendorRouter.PATCH("/", vendorController.Update,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectVendor, shared.ActionUpdate))
	vendorRouter.DELETE("/", vendorController.Delete,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectVendor, shared.ActionDelete))
	vendorRouter.POST("/gleif-sync/", vendorController.GleifSync,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectVendor, shared.ActionUpdate))

	return VendorRouter{Group: vendorRouter}
}
