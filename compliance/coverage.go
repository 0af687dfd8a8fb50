// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package compliance

type ProvisionStatus string

const (
	ProvisionPresent       ProvisionStatus = "present"
	ProvisionPartial       ProvisionStatus = "partial"
	ProvisionMissing       ProvisionStatus = "missing"
	ProvisionNotApplicable ProvisionStatus = "not_applicable"
)

// ChecklistItem is a single Article 30 contractual provision on a contract.
type ChecklistItem struct {
	Key    string          `json:"key"`
	Title  string          `json:"title"`
	Weight float64         `json:"weight"`
	Status ProvisionStatus `json:"status"`
	Notes  string          `json:"notes,omitempty"`
}

// CoverageScore computes the weighted compliance coverage of a provision
// checklist as a percentage. Items marked present or not_applicable count
// fully, partial items count half, missing items count nothing. An empty
// checklist scores zero.
func CoverageScore(items []ChecklistItem) float64 {
	var covered, total float64
	for _, item := range items {
		weight := item.Weight
		if weight <= 0 {
			weight = 1
		}
		total += weight
		switch item.Status {
		case ProvisionPresent, ProvisionNotApplicable:
			covered += weight
		case ProvisionPartial:
			covered += weight / 2
		}
	}
	if total == 0 {
		return 0
	}
	return round2(covered / total * 100)
}

type Tier string

const (
	TierCompliant      Tier = "compliant"
	TierNeedsAttention Tier = "needs_attention"
	TierNonCompliant   Tier = "non_compliant"
)

func TierForScore(score float64) Tier {
	switch {
	case score >= 90:
		return TierCompliant
	case score >= 60:
		return TierNeedsAttention
	default:
		return TierNonCompliant
	}
}
