// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"time"

	"github.com/doracomply/doracomply/compliance"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/google/uuid"
)

func ContractCreateRequestToModel(c dtos.ContractCreateRequest, orgID uuid.UUID) models.Contract {
	return models.Contract{
		OrgID:            orgID,
		VendorID:         c.VendorID,
		ContractRef:      c.ContractRef,
		Title:            c.Title,
		StartDate:        c.StartDate,
		ExpiryDate:       c.ExpiryDate,
		NoticePeriodDays: c.NoticePeriodDays,
		AnnualValue:      c.AnnualValue,
		Currency:         c.Currency,
		Provisions:       c.Provisions,
	}
}

func ApplyContractPatchRequestToModel(p dtos.ContractPatchRequest, contract *models.Contract) bool {
	updated := false

	if p.Title != nil {
		updated = true
		contract.Title = *p.Title
	}

	if p.StartDate != nil {
		updated = true
		contract.StartDate = *p.StartDate
	}

	if p.ExpiryDate != nil {
		updated = true
		contract.ExpiryDate = p.ExpiryDate
	}

	if p.NoticePeriodDays != nil {
		updated = true
		contract.NoticePeriodDays = p.NoticePeriodDays
	}

	if p.AnnualValue != nil {
		updated = true
		contract.AnnualValue = p.AnnualValue
	}

	if p.Currency != nil {
		updated = true
		contract.Currency = p.Currency
	}

	if p.Provisions != nil {
		updated = true
		contract.Provisions = *p.Provisions
	}

	return updated
}

// ContractDTOFromModel derives status and compliance score at read time, they
// are never stored.
func ContractDTOFromModel(contract models.Contract, now time.Time) dtos.ContractDTO {
	return dtos.ContractDTO{
		ID:               contract.ID,
		CreatedAt:        contract.CreatedAt,
		UpdatedAt:        contract.UpdatedAt,
		VendorID:         contract.VendorID,
		ContractRef:      contract.ContractRef,
		Title:            contract.Title,
		StartDate:        contract.StartDate,
		ExpiryDate:       contract.ExpiryDate,
		NoticePeriodDays: contract.NoticePeriodDays,
		AnnualValue:      contract.AnnualValue,
		Currency:         contract.Currency,
		Status:           contract.Status(now),
		Provisions:       contract.Provisions,
		ComplianceScore:  contract.ComplianceScore(),
	}
}

func ContractComplianceDTOFromModel(contract models.Contract) dtos.ContractComplianceDTO {
	score := contract.ComplianceScore()

	missing := []compliance.ChecklistItem{}
	partial := []compliance.ChecklistItem{}
	for _, item := range contract.Provisions {
		switch item.Status {
		case compliance.ProvisionMissing:
			missing = append(missing, item)
		case compliance.ProvisionPartial:
			partial = append(partial, item)
		}
	}

	return dtos.ContractComplianceDTO{
		ContractRef: contract.ContractRef,
		Score:       score,
		Tier:        compliance.TierForScore(score),
		Provisions:  contract.Provisions,
		Missing:     missing,
		Partial:     partial,
	}
}
