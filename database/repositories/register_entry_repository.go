// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/doracomply/doracomply/common"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/shared"
	"github.com/google/uuid"
)

type registerEntryRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.RegisterEntry, shared.DB]
}

func NewRegisterEntryRepository(db shared.DB) *registerEntryRepository {
	return &registerEntryRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.RegisterEntry](db),
	}
}

func (g *registerEntryRepository) GetByOrgID(orgID uuid.UUID) ([]models.RegisterEntry, error) {
	var entries []models.RegisterEntry
	err := g.db.Where("org_id = ?", orgID).Order("created_at asc").Find(&entries).Error
	return entries, err
}

func (g *registerEntryRepository) ReadForOrg(orgID uuid.UUID, id uuid.UUID) (models.RegisterEntry, error) {
	var entry models.RegisterEntry
	err := g.db.Where("org_id = ? AND id = ?", orgID, id).First(&entry).Error
	return entry, err
}
