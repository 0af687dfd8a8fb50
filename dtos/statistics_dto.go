// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/doracomply/doracomply/compliance"
)

// Dashboard widget responses. Each widget endpoint returns exactly one of
// these shapes.

type ContractExpiryWidgetDTO struct {
	Expired       int           `json:"expired"`
	ExpiringSoon  int           `json:"expiringSoon"`
	Active        int           `json:"active"`
	NextToExpire  []ContractDTO `json:"nextToExpire"`
}

type VendorCriticalityWidgetDTO struct {
	Counts map[VendorCriticality]int `json:"counts"`
	Total  int                       `json:"total"`
}

type ComplianceCoverageWidgetDTO struct {
	AverageScore float64                  `json:"averageScore"`
	Tier         compliance.Tier          `json:"tier"`
	ByTier       map[compliance.Tier]int  `json:"byTier"`
	WorstFive    []ContractComplianceDTO  `json:"worstFive"`
}

type OpenRisksWidgetDTO struct {
	Open           int                      `json:"open"`
	InProgress     int                      `json:"inProgress"`
	AboveTolerance int                      `json:"aboveTolerance"`
	ByLevel        map[compliance.Level]int `json:"byLevel"`
	ReviewOverdue  int                      `json:"reviewOverdue"`
}

// RiskHistoryPointDTO is one snapshot of the hourly risk distribution series.
type RiskHistoryPointDTO struct {
	Time     time.Time `json:"time"`
	Low      int       `json:"low"`
	Medium   int       `json:"medium"`
	High     int       `json:"high"`
	Critical int       `json:"critical"`
}
