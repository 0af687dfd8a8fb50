// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"testing"
	"time"

	"github.com/doracomply/doracomply/compliance"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/stretchr/testify/assert"
)

func TestContractDTOFromModelStatus(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no expiry date means active", func(t *testing.T) {
		contract := models.Contract{ContractRef: "C-1", ExpiryDate: nil}
		dto := ContractDTOFromModel(contract, now)
		assert.Equal(t, dtos.ContractActive, dto.Status)
	})

	t.Run("expiry more than 90 days out is active", func(t *testing.T) {
		expiry := now.Add(91 * 24 * time.Hour)
		contract := models.Contract{ContractRef: "C-1", ExpiryDate: &expiry}
		dto := ContractDTOFromModel(contract, now)
		assert.Equal(t, dtos.ContractActive, dto.Status)
	})

	t.Run("expiry within 90 days is expiring soon", func(t *testing.T) {
		expiry := now.Add(30 * 24 * time.Hour)
		contract := models.Contract{ContractRef: "C-1", ExpiryDate: &expiry}
		dto := ContractDTOFromModel(contract, now)
		assert.Equal(t, dtos.ContractExpiringSoon, dto.Status)
	})

	t.Run("expiry in the past is expired", func(t *testing.T) {
		expiry := now.Add(-time.Hour)
		contract := models.Contract{ContractRef: "C-1", ExpiryDate: &expiry}
		dto := ContractDTOFromModel(contract, now)
		assert.Equal(t, dtos.ContractExpired, dto.Status)
	})

	t.Run("expiry exactly now is expired", func(t *testing.T) {
		expiry := now
		contract := models.Contract{ContractRef: "C-1", ExpiryDate: &expiry}
		dto := ContractDTOFromModel(contract, now)
		assert.Equal(t, dtos.ContractExpired, dto.Status)
	})
}

func TestContractComplianceDTOFromModel(t *testing.T) {
	contract := models.Contract{
		ContractRef: "MSA-2026-001",
		Provisions: []compliance.ChecklistItem{
			{Key: "exit_strategy", Weight: 1, Status: compliance.ProvisionPresent},
			{Key: "audit_rights", Weight: 1, Status: compliance.ProvisionPartial},
			{Key: "subcontracting", Weight: 1, Status: compliance.ProvisionMissing},
			{Key: "data_location", Weight: 1, Status: compliance.ProvisionNotApplicable},
		},
	}

	dto := ContractComplianceDTOFromModel(contract)

	assert.Equal(t, "MSA-2026-001", dto.ContractRef)
	assert.InDelta(t, 62.5, dto.Score, 0.001)
	assert.Equal(t, compliance.TierNeedsAttention, dto.Tier)
	assert.Len(t, dto.Missing, 1)
	assert.Equal(t, "subcontracting", dto.Missing[0].Key)
	assert.Len(t, dto.Partial, 1)
	assert.Equal(t, "audit_rights", dto.Partial[0].Key)
}

func TestApplyContractPatchRequestToModel(t *testing.T) {
	contract := models.Contract{Title: "old"}

	t.Run("empty patch leaves the model untouched", func(t *testing.T) {
		assert.False(t, ApplyContractPatchRequestToModel(dtos.ContractPatchRequest{}, &contract))
		assert.Equal(t, "old", contract.Title)
	})

	t.Run("patch updates fields", func(t *testing.T) {
		title := "new"
		expiry := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
		updated := ApplyContractPatchRequestToModel(dtos.ContractPatchRequest{
			Title:      &title,
			ExpiryDate: &expiry,
		}, &contract)
		assert.True(t, updated)
		assert.Equal(t, "new", contract.Title)
		assert.Equal(t, expiry, *contract.ExpiryDate)
	})
}
