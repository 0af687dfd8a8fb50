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

type vendorRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Vendor, shared.DB]
}

func NewVendorRepository(db shared.DB) *vendorRepository {
	return &vendorRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Vendor](db),
	}
}

func (g *vendorRepository) Create(tx shared.DB, vendor *models.Vendor) error {
	firstFreeSlug, err := g.firstFreeSlug(vendor.OrgID, vendor.Slug)
	if err != nil {
		return fmt.Errorf("could not generate next slug: %w", err)
	}
	vendor.Slug = firstFreeSlug

	err = g.GetDB(tx).Create(vendor).Error
	if isUniqueViolation(err, "idx_vendors_org_lei") {
		return dtos.NewAPIError(dtos.ErrCodeDuplicateLEI, "a vendor with this LEI already exists")
	}
	return err
}

func (g *vendorRepository) Update(tx shared.DB, vendor *models.Vendor) error {
	err := g.GetDB(tx).Save(vendor).Error
	if isUniqueViolation(err, "idx_vendors_org_lei") {
		return dtos.NewAPIError(dtos.ErrCodeDuplicateLEI, "a vendor with this LEI already exists")
	}
	return err
}

func (g *vendorRepository) GetByOrgID(orgID uuid.UUID) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := g.db.Where("org_id = ?", orgID).Order("name asc").Find(&vendors).Error
	return vendors, err
}

func (g *vendorRepository) GetByOrgIDPaged(orgID uuid.UUID, pageInfo shared.PageInfo, search string, filter []shared.FilterQuery, sort []shared.SortQuery) (shared.Paged[models.Vendor], error) {
	query := g.db.Model(&models.Vendor{}).Where("org_id = ?", orgID)
	if search != "" {
		query = query.Where("name ILIKE ? OR legal_name ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	for _, f := range filter {
		query = query.Where(f.SQL(), f.Value())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paged[models.Vendor]{}, err
	}

	for _, s := range sort {
		query = query.Order(s.SQL())
	}
	if len(sort) == 0 {
		query = query.Order("name asc")
	}

	var vendors []models.Vendor
	err := pageInfo.ApplyOnDB(query).Find(&vendors).Error
	return shared.NewPaged(pageInfo, total, vendors), err
}

func (g *vendorRepository) ReadBySlug(orgID uuid.UUID, slug string) (models.Vendor, error) {
	var vendor models.Vendor
	err := g.db.Where("org_id = ? AND slug = ?", orgID, slug).First(&vendor).Error
	return vendor, err
}

func (g *vendorRepository) CountOpenRisks(vendorID uuid.UUID) (int64, error) {
	var count int64
	err := g.db.Model(&models.Risk{}).
		Where("vendor_id = ? AND status IN ?", vendorID, []string{"open", "in_progress"}).
		Count(&count).Error
	return count, err
}

func (g *vendorRepository) firstFreeSlug(orgID uuid.UUID, vendorSlug string) (string, error) {
	var slugs []string
	err := g.db.Model(&models.Vendor{}).
		Where("org_id = ? AND slug LIKE ?", orgID, vendorSlug+"%").
		Pluck("slug", &slugs).Error
	if err != nil {
		return "", err
	}

	baseTaken := false
	existing := make(map[string]bool)
	for _, s := range slugs {
		existing[s] = true
		if s == vendorSlug {
			baseTaken = true
		}
	}

	if !baseTaken {
		return vendorSlug, nil
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", vendorSlug, i)
		if !existing[candidate] {
			return candidate, nil
		}
	}
}
