// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"time"

	"github.com/doracomply/doracomply/common"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/shared"
	"github.com/google/uuid"
)

type riskRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Risk, shared.DB]
}

func NewRiskRepository(db shared.DB) *riskRepository {
	return &riskRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Risk](db),
	}
}

func (g *riskRepository) GetByOrgID(orgID uuid.UUID) ([]models.Risk, error) {
	var risks []models.Risk
	err := g.db.Where("org_id = ?", orgID).Order("created_at desc").Find(&risks).Error
	return risks, err
}

func (g *riskRepository) GetOpenByOrgID(orgID uuid.UUID) ([]models.Risk, error) {
	var risks []models.Risk
	err := g.db.Where("org_id = ? AND status IN ?", orgID, []string{"open", "in_progress"}).
		Order("created_at desc").Find(&risks).Error
	return risks, err
}

func (g *riskRepository) ReadForOrg(orgID uuid.UUID, id uuid.UUID) (models.Risk, error) {
	var risk models.Risk
	err := g.db.Where("org_id = ? AND id = ?", orgID, id).First(&risk).Error
	return risk, err
}

func (g *riskRepository) CountReviewOverdue(orgID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := g.db.Model(&models.Risk{}).
		Where("org_id = ? AND status IN ? AND review_date IS NOT NULL AND review_date < ?",
			orgID, []string{"open", "in_progress"}, now).
		Count(&count).Error
	return count, err
}
