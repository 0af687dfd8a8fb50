// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Run("should multiply likelihood and impact", func(t *testing.T) {
		for likelihood := 1; likelihood <= 5; likelihood++ {
			for impact := 1; impact <= 5; impact++ {
				assert.Equal(t, likelihood*impact, Score(likelihood, impact))
			}
		}
	})

	t.Run("should clamp out of range inputs onto the 1..5 scale", func(t *testing.T) {
		assert.Equal(t, 1, Score(0, 0))
		assert.Equal(t, 1, Score(-3, 1))
		assert.Equal(t, 25, Score(6, 99))
		assert.Equal(t, 5, Score(1, 10))
	})
}

func TestLevelForScore(t *testing.T) {
	t.Run("boundaries", func(t *testing.T) {
		assert.Equal(t, LevelLow, LevelForScore(1))
		assert.Equal(t, LevelLow, LevelForScore(4))
		assert.Equal(t, LevelMedium, LevelForScore(5))
		assert.Equal(t, LevelMedium, LevelForScore(9))
		assert.Equal(t, LevelHigh, LevelForScore(10))
		assert.Equal(t, LevelHigh, LevelForScore(15))
		assert.Equal(t, LevelCritical, LevelForScore(16))
		assert.Equal(t, LevelCritical, LevelForScore(25))
	})

	t.Run("every matrix cell maps to a level", func(t *testing.T) {
		expected := map[int]Level{
			1: LevelLow, 2: LevelLow, 3: LevelLow, 4: LevelLow,
			5: LevelMedium, 6: LevelMedium, 8: LevelMedium, 9: LevelMedium,
			10: LevelHigh, 12: LevelHigh, 15: LevelHigh,
			16: LevelCritical, 20: LevelCritical, 25: LevelCritical,
		}
		for likelihood := 1; likelihood <= 5; likelihood++ {
			for impact := 1; impact <= 5; impact++ {
				score := likelihood * impact
				assert.Equal(t, expected[score], LevelForScore(score), "score %d", score)
			}
		}
	})
}

func TestCompareTolerance(t *testing.T) {
	assert.Equal(t, ToleranceWithin, CompareTolerance(9, 9))
	assert.Equal(t, ToleranceWithin, CompareTolerance(1, 9))
	assert.Equal(t, ToleranceAbove, CompareTolerance(10, 9))
	assert.Equal(t, ToleranceAbove, CompareTolerance(25, 24))
}
