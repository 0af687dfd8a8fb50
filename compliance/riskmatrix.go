// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

// Package compliance contains the pure scoring arithmetic of the platform:
// the 5x5 risk matrix, heat-map aggregation, weighted provision coverage and
// the SOC 2 to DORA article mapping. Nothing in here touches the database or
// the network.
package compliance

type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// ClampScale forces a likelihood or impact value onto the 1..5 scale.
func ClampScale(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

// Score multiplies likelihood and impact on the 5x5 matrix.
func Score(likelihood, impact int) int {
	return ClampScale(likelihood) * ClampScale(impact)
}

// LevelForScore maps a matrix score to a discrete risk level.
// Boundaries: <=4 low, 5-9 medium, 10-15 high, >=16 critical.
func LevelForScore(score int) Level {
	switch {
	case score <= 4:
		return LevelLow
	case score <= 9:
		return LevelMedium
	case score <= 15:
		return LevelHigh
	default:
		return LevelCritical
	}
}

type ToleranceComparison string

const (
	ToleranceWithin ToleranceComparison = "within"
	ToleranceAbove  ToleranceComparison = "above"
)

// CompareTolerance checks a score against the risk tolerance an organization
// configured (a score on the same 1..25 scale).
func CompareTolerance(score, tolerance int) ToleranceComparison {
	if score > tolerance {
		return ToleranceAbove
	}
	return ToleranceWithin
}
