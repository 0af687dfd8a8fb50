// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverageScore(t *testing.T) {
	t.Run("empty checklist scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CoverageScore(nil))
	})

	t.Run("present and not_applicable count fully, partial counts half", func(t *testing.T) {
		items := []ChecklistItem{
			{Key: "termination_rights", Weight: 1, Status: ProvisionPresent},
			{Key: "audit_rights", Weight: 1, Status: ProvisionNotApplicable},
			{Key: "exit_strategy", Weight: 1, Status: ProvisionPartial},
			{Key: "subcontracting", Weight: 1, Status: ProvisionMissing},
		}
		assert.Equal(t, 62.5, CoverageScore(items))
	})

	t.Run("weights shift the score", func(t *testing.T) {
		items := []ChecklistItem{
			{Key: "data_location", Weight: 3, Status: ProvisionPresent},
			{Key: "incident_notification", Weight: 1, Status: ProvisionMissing},
		}
		assert.Equal(t, 75.0, CoverageScore(items))
	})

	t.Run("zero weight falls back to one", func(t *testing.T) {
		items := []ChecklistItem{
			{Key: "a", Status: ProvisionPresent},
			{Key: "b", Status: ProvisionMissing},
		}
		assert.Equal(t, 50.0, CoverageScore(items))
	})

	t.Run("all present scores one hundred", func(t *testing.T) {
		items := []ChecklistItem{
			{Key: "a", Weight: 0.5, Status: ProvisionPresent},
			{Key: "b", Weight: 2, Status: ProvisionNotApplicable},
		}
		assert.Equal(t, 100.0, CoverageScore(items))
	})
}

func TestTierForScore(t *testing.T) {
	assert.Equal(t, TierCompliant, TierForScore(100))
	assert.Equal(t, TierCompliant, TierForScore(90))
	assert.Equal(t, TierNeedsAttention, TierForScore(89.99))
	assert.Equal(t, TierNeedsAttention, TierForScore(60))
	assert.Equal(t, TierNonCompliant, TierForScore(59.99))
	assert.Equal(t, TierNonCompliant, TierForScore(0))
}
