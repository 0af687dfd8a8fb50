// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/doracomply/doracomply/common"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/shared"
	"github.com/google/uuid"
)

type documentRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Document, shared.DB]
}

func NewDocumentRepository(db shared.DB) *documentRepository {
	return &documentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Document](db),
	}
}

func (g *documentRepository) GetByOrgID(orgID uuid.UUID) ([]models.Document, error) {
	var documents []models.Document
	err := g.db.Where("org_id = ?", orgID).Order("created_at desc").Find(&documents).Error
	return documents, err
}

func (g *documentRepository) ReadForOrg(orgID uuid.UUID, id uuid.UUID) (models.Document, error) {
	var document models.Document
	err := g.db.Where("org_id = ? AND id = ?", orgID, id).First(&document).Error
	return document, err
}
