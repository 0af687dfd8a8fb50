// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Vendor struct {
	Model
	Name string `json:"name" gorm:"type:text;not null"`
	Slug string `json:"slug" gorm:"type:text;not null;uniqueIndex:idx_vendors_org_slug"`

	Org   Org       `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`
	OrgID uuid.UUID `json:"orgId" gorm:"uniqueIndex:idx_vendors_org_slug;uniqueIndex:idx_vendors_org_lei"`

	LEI *string `json:"lei" gorm:"type:text;uniqueIndex:idx_vendors_org_lei"`

	// GLEIF enrichment, written by the sync endpoint.
	LegalName     *string    `json:"legalName" gorm:"type:text"`
	Jurisdiction  *string    `json:"jurisdiction" gorm:"type:text"`
	GleifStatus   *string    `json:"gleifStatus" gorm:"type:text"`
	LastGleifSync *time.Time `json:"lastGleifSync"`

	Criticality       string                      `json:"criticality" gorm:"type:text;not null;default:'medium'"`
	ServiceCategories datatypes.JSONSlice[string] `json:"serviceCategories" gorm:"type:jsonb"`
	Substitutability  string                      `json:"substitutability" gorm:"type:text;default:'easy'"`
	Website           *string                     `json:"website" gorm:"type:text"`
	ContactEmail      *string                     `json:"contactEmail" gorm:"type:text"`

	Contracts []Contract `json:"contracts" gorm:"foreignKey:VendorID;"`
}

func (Vendor) TableName() string {
	return "vendors"
}
