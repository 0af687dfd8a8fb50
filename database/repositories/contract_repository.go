// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"time"

	"github.com/doracomply/doracomply/common"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
	"github.com/google/uuid"
)

type contractRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Contract, shared.DB]
}

func NewContractRepository(db shared.DB) *contractRepository {
	return &contractRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Contract](db),
	}
}

func (g *contractRepository) Create(tx shared.DB, contract *models.Contract) error {
	err := g.GetDB(tx).Create(contract).Error
	if isUniqueViolation(err, "idx_contracts_org_ref") {
		return dtos.NewAPIError(dtos.ErrCodeDuplicateRef, "a contract with this reference already exists")
	}
	return err
}

func (g *contractRepository) GetByOrgID(orgID uuid.UUID) ([]models.Contract, error) {
	var contracts []models.Contract
	err := g.db.Where("org_id = ?", orgID).Order("contract_ref asc").Find(&contracts).Error
	return contracts, err
}

func (g *contractRepository) GetByVendorID(vendorID uuid.UUID) ([]models.Contract, error) {
	var contracts []models.Contract
	err := g.db.Where("vendor_id = ?", vendorID).Order("contract_ref asc").Find(&contracts).Error
	return contracts, err
}

func (g *contractRepository) ReadByRef(orgID uuid.UUID, contractRef string) (models.Contract, error) {
	var contract models.Contract
	err := g.db.Where("org_id = ? AND contract_ref = ?", orgID, contractRef).First(&contract).Error
	return contract, err
}

// GetExpiringBefore returns every contract whose expiry date is set and lies
// before the deadline. Used by the nightly status daemon.
func (g *contractRepository) GetExpiringBefore(deadline time.Time) ([]models.Contract, error) {
	var contracts []models.Contract
	err := g.db.Where("expiry_date IS NOT NULL AND expiry_date < ?", deadline).Find(&contracts).Error
	return contracts, err
}
