// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/shared"
)

type OrgService struct {
	organizationRepository shared.OrganizationRepository
	rbacProvider           shared.RBACProvider
}

func NewOrgService(organizationRepository shared.OrganizationRepository, rbacProvider shared.RBACProvider) *OrgService {
	return &OrgService{
		organizationRepository: organizationRepository,
		rbacProvider:           rbacProvider,
	}
}

// CreateOrganization persists the organization and bootstraps its role
// hierarchy with the session user as owner.
func (o *OrgService) CreateOrganization(ctx shared.Context, organization *models.Org) error {
	if organization.Name == "" || organization.Slug == "" {
		return echo.NewHTTPError(409, "organizations with an empty name or an empty slug are not allowed").WithInternal(fmt.Errorf("organizations with an empty name or an empty slug are not allowed"))
	}

	if err := o.organizationRepository.Create(nil, organization); err != nil {
		return err
	}

	rbac := o.rbacProvider.GetDomainRBAC(organization.ID.String())
	userID := shared.GetSession(ctx).GetUserID()
	if err := shared.BootstrapOrg(rbac, userID, shared.RoleOwner); err != nil {
		return echo.NewHTTPError(500, "could not bootstrap organization roles").WithInternal(err)
	}
	ctx.Set("rbac", rbac)

	return nil
}

func (o *OrgService) ReadBySlug(slug string) (*models.Org, error) {
	if slug == "" {
		return nil, echo.NewHTTPError(400, "slug is required")
	}

	org, err := o.organizationRepository.ReadBySlug(slug)
	return &org, err
}
