// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

func VendorCreateRequestToModel(c dtos.VendorCreateRequest, orgID uuid.UUID) models.Vendor {
	substitutability := c.Substitutability
	if substitutability == "" {
		substitutability = string(dtos.SubstitutabilityEasy)
	}

	return models.Vendor{
		Name:              c.Name,
		Slug:              slug.Make(c.Name),
		OrgID:             orgID,
		LEI:               c.LEI,
		Criticality:       c.Criticality,
		ServiceCategories: c.ServiceCategories,
		Substitutability:  substitutability,
		Website:           c.Website,
		ContactEmail:      c.ContactEmail,
	}
}

func ApplyVendorPatchRequestToModel(p dtos.VendorPatchRequest, vendor *models.Vendor) bool {
	updated := false

	if p.Name != nil {
		updated = true
		vendor.Name = *p.Name
		vendor.Slug = slug.Make(*p.Name)
	}

	if p.LEI != nil {
		updated = true
		vendor.LEI = p.LEI
		// a new LEI invalidates the previous GLEIF enrichment
		vendor.LegalName = nil
		vendor.Jurisdiction = nil
		vendor.GleifStatus = nil
		vendor.LastGleifSync = nil
	}

	if p.Criticality != nil {
		updated = true
		vendor.Criticality = *p.Criticality
	}

	if p.ServiceCategories != nil {
		updated = true
		vendor.ServiceCategories = *p.ServiceCategories
	}

	if p.Substitutability != nil {
		updated = true
		vendor.Substitutability = *p.Substitutability
	}

	if p.Website != nil {
		updated = true
		vendor.Website = p.Website
	}

	if p.ContactEmail != nil {
		updated = true
		vendor.ContactEmail = p.ContactEmail
	}

	return updated
}

func VendorDTOFromModel(vendor models.Vendor) dtos.VendorDTO {
	return dtos.VendorDTO{
		ID:                vendor.ID,
		CreatedAt:         vendor.CreatedAt,
		UpdatedAt:         vendor.UpdatedAt,
		Name:              vendor.Name,
		Slug:              vendor.Slug,
		LEI:               vendor.LEI,
		LegalName:         vendor.LegalName,
		Jurisdiction:      vendor.Jurisdiction,
		GleifStatus:       vendor.GleifStatus,
		LastGleifSync:     vendor.LastGleifSync,
		Criticality:       dtos.VendorCriticality(vendor.Criticality),
		ServiceCategories: vendor.ServiceCategories,
		Substitutability:  dtos.Substitutability(vendor.Substitutability),
		Website:           vendor.Website,
		ContactEmail:      vendor.ContactEmail,
	}
}
