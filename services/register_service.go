// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	databasetypes "github.com/doracomply/doracomply/database/types"

	"github.com/doracomply/doracomply/compliance"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
	"github.com/doracomply/doracomply/transformer"
	"github.com/doracomply/doracomply/utils"
)

type RegisterService struct {
	registerEntryRepository shared.RegisterEntryRepository
	documentRepository      shared.DocumentRepository
	vendorRepository        shared.VendorRepository
}

func NewRegisterService(registerEntryRepository shared.RegisterEntryRepository, documentRepository shared.DocumentRepository, vendorRepository shared.VendorRepository) *RegisterService {
	return &RegisterService{
		registerEntryRepository: registerEntryRepository,
		documentRepository:      documentRepository,
		vendorRepository:        vendorRepository,
	}
}

// PopulateFromSOC2 builds register entries from the subservice organizations
// of a parsed SOC 2 report and maps its controls onto the DORA articles.
func (s *RegisterService) PopulateFromSOC2(org models.Org, request dtos.PopulateFromSOC2Request) (dtos.PopulateFromSOC2Response, error) {
	document, err := s.documentRepository.ReadForOrg(org.ID, request.DocumentID)
	if err != nil {
		return dtos.PopulateFromSOC2Response{}, err
	}

	if document.ParseStatus != string(dtos.ParseCompleted) {
		return dtos.PopulateFromSOC2Response{}, dtos.NewAPIError(dtos.ErrCodeValidation, "document has not been parsed yet")
	}

	vendorID := document.VendorID
	if request.VendorID != nil {
		vendorID = request.VendorID
	}
	if vendorID == nil {
		return dtos.PopulateFromSOC2Response{}, dtos.NewAPIError(dtos.ErrCodeValidation, "no vendor associated with the document")
	}

	vendor, err := s.vendorRepository.Read(*vendorID)
	if err != nil {
		return dtos.PopulateFromSOC2Response{}, err
	}

	extraction, err := databasetypes.StructFromJSONB[dtos.SOC2Extraction](document.Extraction)
	if err != nil {
		return dtos.PopulateFromSOC2Response{}, fmt.Errorf("could not decode extraction: %w", err)
	}

	entries := utils.Map(extraction.SubserviceOrgs, func(subservice dtos.SubserviceOrg) models.RegisterEntry {
		return models.RegisterEntry{
			OrgID:              org.ID,
			VendorID:           vendor.ID,
			ContractID:         nil,
			FunctionName:       subservice.ServiceType,
			CriticalFunction:   !subservice.Carveout,
			DataSensitivity:    string(dtos.DataSensitivityMedium),
			ServiceType:        subservice.ServiceType,
			SubcontractorChain: []string{subservice.Name},
			Source:             string(dtos.RegisterSourceSOC2Import),
		}
	})
	if err := s.registerEntryRepository.CreateBatch(nil, entries); err != nil {
		return dtos.PopulateFromSOC2Response{}, err
	}

	createdDTOs := utils.Map(entries, func(entry models.RegisterEntry) dtos.RegisterEntryDTO {
		return transformer.RegisterEntryDTOFromModel(entry, vendor.Name)
	})

	controls := utils.Map(extraction.Controls, func(c dtos.ExtractedControl) compliance.SOC2Control {
		return compliance.SOC2Control{
			ControlID:   c.ControlID,
			TSCCategory: c.TSCCategory,
			Description: c.Description,
		}
	})
	coverage := compliance.CalculateCoverage(compliance.MapControls(controls))

	return dtos.PopulateFromSOC2Response{
		CreatedEntries: createdDTOs,
		Coverage:       coverage,
		Gaps:           compliance.Gaps(coverage),
	}, nil
}

// ExportCSV renders the full register of information of the organization.
func (s *RegisterService) ExportCSV(orgID uuid.UUID) ([]byte, error) {
	entries, err := s.registerEntryRepository.GetByOrgID(orgID)
	if err != nil {
		return nil, err
	}

	vendorNames, err := s.vendorNames(entries)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"vendor", "function", "critical_function", "data_sensitivity", "service_type", "country_of_provision", "subcontractor_chain", "source", "created_at"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, entry := range entries {
		record := []string{
			vendorNames[entry.VendorID],
			entry.FunctionName,
			strconv.FormatBool(entry.CriticalFunction),
			entry.DataSensitivity,
			entry.ServiceType,
			entry.CountryOfProvision,
			strings.Join(entry.SubcontractorChain, ";"),
			entry.Source,
			entry.CreatedAt.Format("2006-01-02"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func (s *RegisterService) vendorNames(entries []models.RegisterEntry) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]bool)
	for _, entry := range entries {
		if !seen[entry.VendorID] {
			seen[entry.VendorID] = true
			ids = append(ids, entry.VendorID)
		}
	}

	vendors, err := s.vendorRepository.List(ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(vendors))
	for _, vendor := range vendors {
		names[vendor.ID] = vendor.Name
	}
	return names, nil
}
