// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
	"github.com/doracomply/doracomply/transformer"
	"github.com/doracomply/doracomply/utils"
)

type OrgController struct {
	organizationRepository shared.OrganizationRepository
	orgService             shared.OrgService
	rbacProvider           shared.RBACProvider
}

func NewOrgController(organizationRepository shared.OrganizationRepository, orgService shared.OrgService, rbacProvider shared.RBACProvider) *OrgController {
	return &OrgController{
		organizationRepository: organizationRepository,
		orgService:             orgService,
		rbacProvider:           rbacProvider,
	}
}

func (controller *OrgController) Create(ctx shared.Context) error {
	var req dtos.OrgCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	organization := transformer.OrgCreateRequestToModel(req)
	if organization.Slug == "" {
		return echo.NewHTTPError(400, "slug is required")
	}

	if err := controller.orgService.CreateOrganization(ctx, &organization); err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, transformer.OrgDTOFromModel(organization))
}

// List returns every organization the session user is a member of.
func (controller *OrgController) List(ctx shared.Context) error {
	userID := shared.GetSession(ctx).GetUserID()

	domains, err := controller.rbacProvider.DomainsOfUser(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list organizations").WithInternal(err)
	}

	ids := make([]uuid.UUID, 0, len(domains))
	for _, domain := range domains {
		id, err := uuid.Parse(domain)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	orgs, err := controller.organizationRepository.List(ids)
	if err != nil {
		return echo.NewHTTPError(500, "could not list organizations").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(orgs, transformer.OrgDTOFromModel))
}

func (controller *OrgController) Read(ctx shared.Context) error {
	organization := shared.GetOrg(ctx)

	members, err := FetchMembersOfOrganization(ctx)
	if err != nil {
		return echo.NewHTTPError(500, "could not get members of organization").WithInternal(err)
	}

	return ctx.JSON(200, dtos.OrgDetailsDTO{
		OrgDTO:  transformer.OrgDTOFromModel(organization),
		Members: members,
	})
}

func (controller *OrgController) Members(ctx shared.Context) error {
	members, err := FetchMembersOfOrganization(ctx)
	if err != nil {
		return echo.NewHTTPError(500, "could not get members of organization").WithInternal(err)
	}
	return ctx.JSON(200, members)
}

func (controller *OrgController) Update(ctx shared.Context) error {
	organization := shared.GetOrg(ctx)

	var patchRequest dtos.OrgPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyOrgPatchRequestToModel(patchRequest, &organization)

	if organization.Name == "" {
		return echo.NewHTTPError(409, "organizations with an empty name are not allowed")
	}

	if updated {
		if err := controller.organizationRepository.Update(nil, &organization); err != nil {
			return httpError(err)
		}
	}

	return ctx.JSON(200, transformer.OrgDTOFromModel(organization))
}

func (controller *OrgController) Delete(ctx shared.Context) error {
	organizationID := shared.GetOrg(ctx).GetID()

	if err := controller.organizationRepository.Delete(nil, organizationID); err != nil {
		return echo.NewHTTPError(500, "could not delete organization").WithInternal(err)
	}

	return ctx.NoContent(200)
}
