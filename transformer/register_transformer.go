// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/google/uuid"
)

func RegisterEntryCreateRequestToModel(c dtos.RegisterEntryCreateRequest, orgID uuid.UUID) models.RegisterEntry {
	return models.RegisterEntry{
		OrgID:              orgID,
		VendorID:           c.VendorID,
		ContractID:         c.ContractID,
		FunctionName:       c.FunctionName,
		CriticalFunction:   c.CriticalFunction,
		DataSensitivity:    c.DataSensitivity,
		ServiceType:        c.ServiceType,
		CountryOfProvision: c.CountryOfProvision,
		SubcontractorChain: c.SubcontractorChain,
		Source:             string(dtos.RegisterSourceManual),
	}
}

func RegisterEntryDTOFromModel(entry models.RegisterEntry, vendorName string) dtos.RegisterEntryDTO {
	return dtos.RegisterEntryDTO{
		ID:                 entry.ID,
		CreatedAt:          entry.CreatedAt,
		UpdatedAt:          entry.UpdatedAt,
		VendorID:           entry.VendorID,
		VendorName:         vendorName,
		ContractID:         entry.ContractID,
		FunctionName:       entry.FunctionName,
		CriticalFunction:   entry.CriticalFunction,
		DataSensitivity:    dtos.DataSensitivity(entry.DataSensitivity),
		ServiceType:        entry.ServiceType,
		CountryOfProvision: entry.CountryOfProvision,
		SubcontractorChain: entry.SubcontractorChain,
		Source:             dtos.RegisterSource(entry.Source),
	}
}
