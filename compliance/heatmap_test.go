// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildHeatMap(t *testing.T) {
	risks := []RiskPoint{
		{ID: "r1", Title: "Vendor outage", InherentLikelihood: 4, InherentImpact: 5, ResidualLikelihood: 2, ResidualImpact: 4},
		{ID: "r2", Title: "Data breach", InherentLikelihood: 3, InherentImpact: 4, ResidualLikelihood: 2, ResidualImpact: 3},
		{ID: "r3", Title: "Key person loss", InherentLikelihood: 2, InherentImpact: 2, ResidualLikelihood: 1, ResidualImpact: 2},
	}

	t.Run("should always produce 25 cells in likelihood major order", func(t *testing.T) {
		heatMap := BuildHeatMap(nil, DimensionInherent)
		assert.Len(t, heatMap.Cells, 25)
		assert.Equal(t, 1, heatMap.Cells[0].Likelihood)
		assert.Equal(t, 1, heatMap.Cells[0].Impact)
		assert.Equal(t, 1, heatMap.Cells[4].Likelihood)
		assert.Equal(t, 5, heatMap.Cells[4].Impact)
		assert.Equal(t, 5, heatMap.Cells[24].Likelihood)
		assert.Equal(t, 5, heatMap.Cells[24].Impact)
		assert.Equal(t, 0, heatMap.Distribution.Total)
	})

	t.Run("should bucket risks into the inherent dimension", func(t *testing.T) {
		heatMap := BuildHeatMap(risks, DimensionInherent)

		// cell index is (likelihood-1)*5 + (impact-1)
		cell := heatMap.Cells[(4-1)*5+(5-1)]
		assert.Equal(t, 1, cell.Count)
		assert.Equal(t, []string{"r1"}, cell.RiskIDs)
		assert.Equal(t, 20, cell.Score)
		assert.Equal(t, LevelCritical, cell.Level)

		assert.Equal(t, 3, heatMap.Distribution.Total)
		assert.Equal(t, 1, heatMap.Distribution.Counts[LevelCritical])
		assert.Equal(t, 1, heatMap.Distribution.Counts[LevelHigh])
		assert.Equal(t, 1, heatMap.Distribution.Counts[LevelLow])
		assert.Equal(t, 0, heatMap.Distribution.Counts[LevelMedium])
		assert.InDelta(t, 33.33, heatMap.Distribution.Percentages[LevelHigh], 0.01)
	})

	t.Run("should bucket risks into the residual dimension", func(t *testing.T) {
		heatMap := BuildHeatMap(risks, DimensionResidual)

		cell := heatMap.Cells[(2-1)*5+(4-1)]
		assert.Equal(t, 1, cell.Count)
		assert.Equal(t, []string{"r1"}, cell.RiskIDs)
		assert.Equal(t, LevelMedium, cell.Level)

		assert.Equal(t, 0, heatMap.Distribution.Counts[LevelCritical])
	})
}

func TestPositionMarkers(t *testing.T) {
	markers := PositionMarkers([]RiskPoint{
		{ID: "r1", Title: "Vendor outage", InherentLikelihood: 4, InherentImpact: 5, ResidualLikelihood: 2, ResidualImpact: 4},
		{ID: "r2", Title: "Untreated", InherentLikelihood: 3, InherentImpact: 3, ResidualLikelihood: 3, ResidualImpact: 3},
	})

	assert.Len(t, markers, 2)

	assert.True(t, markers[0].Reduced)
	assert.Equal(t, 20, markers[0].From.Score)
	assert.Equal(t, LevelCritical, markers[0].From.Level)
	assert.Equal(t, 8, markers[0].To.Score)
	assert.Equal(t, LevelMedium, markers[0].To.Level)

	assert.False(t, markers[1].Reduced)
	assert.Equal(t, markers[1].From, markers[1].To)
}
