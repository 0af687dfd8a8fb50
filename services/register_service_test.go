// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	databasetypes "github.com/doracomply/doracomply/database/types"

	"github.com/doracomply/doracomply/compliance"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
)

type fakeRegisterEntryRepository struct {
	shared.RegisterEntryRepository
	created []models.RegisterEntry
}

func (f *fakeRegisterEntryRepository) CreateBatch(tx shared.DB, entries []models.RegisterEntry) error {
	for i := range entries {
		entries[i].ID = uuid.New()
	}
	f.created = append(f.created, entries...)
	return nil
}

type fakeDocumentRepository struct {
	shared.DocumentRepository
	document models.Document
}

func (f fakeDocumentRepository) ReadForOrg(orgID uuid.UUID, id uuid.UUID) (models.Document, error) {
	return f.document, nil
}

type fakeVendorRepository struct {
	shared.VendorRepository
	vendor models.Vendor
}

func (f fakeVendorRepository) Read(id uuid.UUID) (models.Vendor, error) {
	return f.vendor, nil
}

func TestPopulateFromSOC2(t *testing.T) {
	org := models.Org{Model: models.Model{ID: uuid.New()}, Slug: "acme-bank"}
	vendorID := uuid.New()
	vendor := models.Vendor{Model: models.Model{ID: vendorID}, OrgID: org.ID, Name: "Cloudhost"}
	documentID := uuid.New()

	parsedDocument := func(t *testing.T, extraction dtos.SOC2Extraction) models.Document {
		t.Helper()
		extractionJSON, err := databasetypes.JSONBFromStruct(extraction)
		require.NoError(t, err)
		return models.Document{
			Model:       models.Model{ID: documentID},
			OrgID:       org.ID,
			VendorID:    &vendorID,
			ParseStatus: string(dtos.ParseCompleted),
			Extraction:  extractionJSON,
		}
	}

	t.Run("should reject a document that has not been parsed yet", func(t *testing.T) {
		entryRepository := &fakeRegisterEntryRepository{}
		service := NewRegisterService(
			entryRepository,
			fakeDocumentRepository{document: models.Document{
				Model:       models.Model{ID: documentID},
				OrgID:       org.ID,
				VendorID:    &vendorID,
				ParseStatus: string(dtos.ParsePending),
			}},
			fakeVendorRepository{vendor: vendor},
		)

		_, err := service.PopulateFromSOC2(org, dtos.PopulateFromSOC2Request{DocumentID: documentID})

		var apiErr dtos.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, dtos.ErrCodeValidation, apiErr.Code)
		assert.Empty(t, entryRepository.created)
	})

	t.Run("should reject when no vendor is associated with the document", func(t *testing.T) {
		document := parsedDocument(t, dtos.SOC2Extraction{})
		document.VendorID = nil

		service := NewRegisterService(
			&fakeRegisterEntryRepository{},
			fakeDocumentRepository{document: document},
			fakeVendorRepository{vendor: vendor},
		)

		_, err := service.PopulateFromSOC2(org, dtos.PopulateFromSOC2Request{DocumentID: documentID})

		var apiErr dtos.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, dtos.ErrCodeValidation, apiErr.Code)
	})

	t.Run("should create an entry per subservice org and mark carveouts as non critical", func(t *testing.T) {
		extraction := dtos.SOC2Extraction{
			SubserviceOrgs: []dtos.SubserviceOrg{
				{Name: "AWS", ServiceType: "cloud_hosting", Carveout: true},
				{Name: "Sentinel Ops", ServiceType: "security_monitoring", Carveout: false},
			},
			Controls: []dtos.ExtractedControl{
				{ControlID: "CC6.1", TSCCategory: "security", Description: "logical access controls restrict access to systems"},
			},
		}

		entryRepository := &fakeRegisterEntryRepository{}
		service := NewRegisterService(
			entryRepository,
			fakeDocumentRepository{document: parsedDocument(t, extraction)},
			fakeVendorRepository{vendor: vendor},
		)

		response, err := service.PopulateFromSOC2(org, dtos.PopulateFromSOC2Request{DocumentID: documentID})
		require.NoError(t, err)

		require.Len(t, entryRepository.created, 2)

		carveout := entryRepository.created[0]
		assert.Equal(t, org.ID, carveout.OrgID)
		assert.Equal(t, vendorID, carveout.VendorID)
		assert.Equal(t, "cloud_hosting", carveout.FunctionName)
		assert.False(t, carveout.CriticalFunction)
		assert.Equal(t, []string{"AWS"}, []string(carveout.SubcontractorChain))
		assert.Equal(t, string(dtos.RegisterSourceSOC2Import), carveout.Source)

		inclusive := entryRepository.created[1]
		assert.True(t, inclusive.CriticalFunction)
		assert.Equal(t, "security_monitoring", inclusive.ServiceType)

		require.Len(t, response.CreatedEntries, 2)
		assert.Equal(t, "Cloudhost", response.CreatedEntries[0].VendorName)

		expected := compliance.CalculateCoverage(compliance.MapControls([]compliance.SOC2Control{
			{ControlID: "CC6.1", TSCCategory: "security", Description: "logical access controls restrict access to systems"},
		}))
		assert.Equal(t, expected, response.Coverage)
		assert.Equal(t, compliance.Gaps(expected), response.Gaps)
	})
}
