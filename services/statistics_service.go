// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/doracomply/doracomply/compliance"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/shared"
)

type StatisticsService struct {
	riskRepository           shared.RiskRepository
	orgRiskHistoryRepository shared.OrgRiskHistoryRepository
}

func NewStatisticsService(riskRepository shared.RiskRepository, orgRiskHistoryRepository shared.OrgRiskHistoryRepository) *StatisticsService {
	return &StatisticsService{
		riskRepository:           riskRepository,
		orgRiskHistoryRepository: orgRiskHistoryRepository,
	}
}

// RiskDistribution counts the open risks of the organization per residual
// risk level. Every level is present in the result, possibly zero.
func (s *StatisticsService) RiskDistribution(orgID uuid.UUID) (map[string]int, error) {
	risks, err := s.riskRepository.GetOpenByOrgID(orgID)
	if err != nil {
		return nil, err
	}

	distribution := map[string]int{
		string(compliance.LevelLow):      0,
		string(compliance.LevelMedium):   0,
		string(compliance.LevelHigh):     0,
		string(compliance.LevelCritical): 0,
	}
	for _, risk := range risks {
		distribution[string(compliance.LevelForScore(risk.ResidualScore()))]++
	}
	return distribution, nil
}

// SnapshotRiskDistribution writes the current distribution into the history
// series backing the dashboard charts.
func (s *StatisticsService) SnapshotRiskDistribution(orgID uuid.UUID, at time.Time) error {
	distribution, err := s.RiskDistribution(orgID)
	if err != nil {
		return err
	}

	snapshot := models.OrgRiskHistory{
		OrgID:    orgID,
		Time:     at,
		Low:      distribution[string(compliance.LevelLow)],
		Medium:   distribution[string(compliance.LevelMedium)],
		High:     distribution[string(compliance.LevelHigh)],
		Critical: distribution[string(compliance.LevelCritical)],
	}
	return s.orgRiskHistoryRepository.Save(nil, &snapshot)
}
