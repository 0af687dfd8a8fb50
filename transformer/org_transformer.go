// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/gosimple/slug"
)

func OrgCreateRequestToModel(c dtos.OrgCreateRequest) models.Org {
	classification := c.NIS2Classification
	if classification == "" {
		classification = string(dtos.NIS2OutOfScope)
	}

	return models.Org{
		Name:                   c.Name,
		Slug:                   slug.Make(c.Name),
		LEI:                    c.LEI,
		ContactEmail:           c.ContactEmail,
		Country:                c.Country,
		Industry:               c.Industry,
		NumberOfEmployees:      c.NumberOfEmployees,
		CriticalInfrastructure: c.CriticalInfrastructure,
		FinancialEntity:        c.FinancialEntity,
		NIS2Classification:     classification,
		RiskTolerance:          9,
		Description:            c.Description,
	}
}

func ApplyOrgPatchRequestToModel(p dtos.OrgPatchRequest, org *models.Org) bool {
	updated := false

	if p.Name != nil {
		updated = true
		org.Name = *p.Name
		org.Slug = slug.Make(*p.Name)
	}

	if p.LEI != nil {
		updated = true
		org.LEI = p.LEI
	}

	if p.ContactEmail != nil {
		updated = true
		org.ContactEmail = p.ContactEmail
	}

	if p.Country != nil {
		updated = true
		org.Country = p.Country
	}

	if p.Industry != nil {
		updated = true
		org.Industry = p.Industry
	}

	if p.NumberOfEmployees != nil {
		updated = true
		org.NumberOfEmployees = p.NumberOfEmployees
	}

	if p.CriticalInfrastructure != nil {
		updated = true
		org.CriticalInfrastructure = *p.CriticalInfrastructure
	}

	if p.FinancialEntity != nil {
		updated = true
		org.FinancialEntity = *p.FinancialEntity
	}

	if p.NIS2Classification != nil {
		updated = true
		org.NIS2Classification = *p.NIS2Classification
	}

	if p.RiskTolerance != nil {
		updated = true
		org.RiskTolerance = *p.RiskTolerance
	}

	if p.Description != nil {
		updated = true
		org.Description = *p.Description
	}

	return updated
}

func OrgDTOFromModel(org models.Org) dtos.OrgDTO {
	return dtos.OrgDTO{
		ID:                     org.ID,
		CreatedAt:              org.CreatedAt,
		UpdatedAt:              org.UpdatedAt,
		Name:                   org.Name,
		Slug:                   org.Slug,
		LEI:                    org.LEI,
		ContactEmail:           org.ContactEmail,
		Country:                org.Country,
		Industry:               org.Industry,
		NumberOfEmployees:      org.NumberOfEmployees,
		CriticalInfrastructure: org.CriticalInfrastructure,
		FinancialEntity:        org.FinancialEntity,
		NIS2Classification:     dtos.NIS2Classification(org.NIS2Classification),
		RiskTolerance:          org.RiskTolerance,
		Description:            org.Description,
	}
}
