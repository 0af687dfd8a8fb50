// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"fmt"

	"github.com/doracomply/doracomply/common"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
	"github.com/google/uuid"
)

type orgRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Org, shared.DB]
}

func NewOrgRepository(db shared.DB) *orgRepository {
	return &orgRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Org](db),
	}
}

func (g *orgRepository) Create(tx shared.DB, org *models.Org) error {
	firstFreeSlug, err := g.firstFreeSlug(org.Slug)
	if err != nil {
		return fmt.Errorf("could not generate next slug: %w", err)
	}
	org.Slug = firstFreeSlug

	err = g.GetDB(tx).Create(org).Error
	if isUniqueViolation(err, "idx_organizations_lei") {
		return dtos.NewAPIError(dtos.ErrCodeDuplicateLEI, "an organization with this LEI already exists")
	}
	return err
}

func (g *orgRepository) ReadBySlug(slug string) (models.Org, error) {
	var t models.Org
	err := g.db.Model(models.Org{}).Preload("Webhooks").Where("slug = ?", slug).First(&t).Error
	return t, err
}

func (g *orgRepository) GetOrgByID(id uuid.UUID) (models.Org, error) {
	var org models.Org
	err := g.db.Model(models.Org{}).Where("id = ?", id).First(&org).Error
	return org, err
}

func (g *orgRepository) Update(tx shared.DB, org *models.Org) error {
	err := g.GetDB(tx).Save(org).Error
	if isUniqueViolation(err, "idx_organizations_lei") {
		return dtos.NewAPIError(dtos.ErrCodeDuplicateLEI, "an organization with this LEI already exists")
	}
	return err
}

func (g *orgRepository) firstFreeSlug(organizationSlug string) (string, error) {
	var slugs []string
	err := g.db.Model(&models.Org{}).
		Where("slug LIKE ?", organizationSlug+"%").
		Pluck("slug", &slugs).Error
	if err != nil {
		return "", err
	}

	baseTaken := false
	existing := make(map[string]bool)
	for _, s := range slugs {
		existing[s] = true
		if s == organizationSlug {
			baseTaken = true
		}
	}

	if !baseTaken {
		return organizationSlug, nil
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", organizationSlug, i)
		if !existing[candidate] {
			return candidate, nil
		}
	}
}
