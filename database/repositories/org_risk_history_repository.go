// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"time"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/shared"
	"github.com/google/uuid"
)

type orgRiskHistoryRepository struct {
	db shared.DB
}

func NewOrgRiskHistoryRepository(db shared.DB) *orgRiskHistoryRepository {
	return &orgRiskHistoryRepository{db: db}
}

func (g *orgRiskHistoryRepository) Save(tx shared.DB, snapshot *models.OrgRiskHistory) error {
	if tx != nil {
		return tx.Save(snapshot).Error
	}
	return g.db.Save(snapshot).Error
}

func (g *orgRiskHistoryRepository) GetHistory(orgID uuid.UUID, start, end time.Time) ([]models.OrgRiskHistory, error) {
	var history []models.OrgRiskHistory
	err := g.db.Where("org_id = ? AND time >= ? AND time <= ?", orgID, start, end).
		Order("time asc").Find(&history).Error
	return history, err
}
