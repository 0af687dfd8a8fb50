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

type apiKeyRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.APIKey, shared.DB]
}

func NewAPIKeyRepository(db shared.DB) *apiKeyRepository {
	return &apiKeyRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.APIKey](db),
	}
}

func (g *apiKeyRepository) GetByTokenHash(hash string) (models.APIKey, error) {
	var key models.APIKey
	err := g.db.Where("token = ?", hash).First(&key).Error
	return key, err
}

func (g *apiKeyRepository) ListByUserID(userID string) ([]models.APIKey, error) {
	var keys []models.APIKey
	err := g.db.Where("user_id = ?", userID).Order("created_at desc").Find(&keys).Error
	return keys, err
}

func (g *apiKeyRepository) MarkAsLastUsedNow(id uuid.UUID) error {
	return g.db.Model(&models.APIKey{}).Where("id = ?", id).
		Update("last_used_at", time.Now()).Error
}
