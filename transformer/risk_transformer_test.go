// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"testing"

	"github.com/doracomply/doracomply/compliance"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRiskDTOFromModel(t *testing.T) {
	risk := models.Risk{
		Title:              "Cloud provider outage",
		Category:           "business_continuity",
		InherentLikelihood: 4,
		InherentImpact:     5,
		ResidualLikelihood: 2,
		ResidualImpact:     3,
		Treatment:          "mitigate",
		Status:             "open",
	}

	dto := RiskDTOFromModel(risk, 9)

	assert.Equal(t, 20, dto.InherentScore)
	assert.Equal(t, compliance.LevelCritical, dto.InherentLevel)
	assert.Equal(t, 6, dto.ResidualScore)
	assert.Equal(t, compliance.LevelMedium, dto.ResidualLevel)
	assert.Equal(t, dtos.RiskCategory("business_continuity"), dto.Category)
	// residual 6 <= tolerance 9
	assert.Equal(t, compliance.ToleranceWithin, dto.ToleranceComparison)
}

func TestRiskDTOFromModelAboveTolerance(t *testing.T) {
	risk := models.Risk{
		ResidualLikelihood: 4,
		ResidualImpact:     4,
	}

	dto := RiskDTOFromModel(risk, 9)
	assert.Equal(t, compliance.ToleranceAbove, dto.ToleranceComparison)
}

func TestHeatMapDTOFromRisks(t *testing.T) {
	risks := []models.Risk{
		{Title: "a", InherentLikelihood: 5, InherentImpact: 5, ResidualLikelihood: 2, ResidualImpact: 2},
		{Title: "b", InherentLikelihood: 1, InherentImpact: 1, ResidualLikelihood: 1, ResidualImpact: 1},
	}

	dto := HeatMapDTOFromRisks(risks, compliance.DimensionResidual, 9)

	assert.Equal(t, compliance.DimensionResidual, dto.Dimension)
	assert.Len(t, dto.Cells, 25)
	assert.Equal(t, 2, dto.Distribution.Total)
	assert.Len(t, dto.Markers, 2)
	assert.True(t, dto.Markers[0].Reduced)
	assert.False(t, dto.Markers[1].Reduced)
	assert.Equal(t, 9, dto.RiskTolerance)
}

func TestRiskCreateRequestToModelStartsOpen(t *testing.T) {
	model := RiskCreateRequestToModel(dtos.RiskCreateRequest{
		Title:              "x",
		Category:           "supply_chain",
		InherentLikelihood: 3,
		InherentImpact:     3,
		ResidualLikelihood: 2,
		ResidualImpact:     2,
		Treatment:          "accept",
	}, uuid.Nil)

	assert.Equal(t, "open", model.Status)
}
