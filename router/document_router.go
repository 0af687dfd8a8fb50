// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/controllers"
	"github.com/doracomply/doracomply/middlewares"
	"github.com/doracomply/doracomply/shared"
)

type DocumentRouter struct {
	*echo.Group
}

func NewDocumentRouter(
	orgRouter OrgRouter,
	documentController *controllers.DocumentController,
) DocumentRouter {
	documentsRouter := orgRouter.Group.Group("/documents")
	documentsRouter.GET("/", documentController.List,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectDocument, shared.ActionRead))
	documentsRouter.POST("/", documentController.Create,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectDocument, shared.ActionCreate))

	documentRouter := documentsRouter.Group("/:documentID")
	documentRouter.GET("/", documentController.Read,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectDocument, shared.ActionRead))
	documentRouter.GET("/extraction/", documentController.Extraction,
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectDocument, shared.ActionRead))
	documentRouter.POST("/content/", documentController.Upload,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectDocument, shared.ActionUpdate))
	documentRouter.POST("/parse/", documentController.Parse,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectDocument, shared.ActionUpdate))
	documentRouter.DELETE("/", documentController.Delete,
		middlewares.NeededScope([]string{"manage"}),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectDocument, shared.ActionDelete))

	return DocumentRouter{Group: documentRouter}
}
