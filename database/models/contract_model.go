// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"time"

	"github.com/doracomply/doracomply/compliance"
	"github.com/doracomply/doracomply/dtos"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExpiringSoonWindow is how far before the expiry date a contract counts as
// expiring.
const ExpiringSoonWindow = 90 * 24 * time.Hour

type Contract struct {
	Model
	Org   Org       `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`
	OrgID uuid.UUID `json:"orgId" gorm:"uniqueIndex:idx_contracts_org_ref"`

	Vendor   Vendor    `json:"-" gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE;"`
	VendorID uuid.UUID `json:"vendorId"`

	ContractRef      string     `json:"contractRef" gorm:"type:text;not null;uniqueIndex:idx_contracts_org_ref"`
	Title            string     `json:"title" gorm:"type:text;not null"`
	StartDate        time.Time  `json:"startDate" gorm:"not null"`
	ExpiryDate       *time.Time `json:"expiryDate"`
	NoticePeriodDays *int       `json:"noticePeriodDays"`
	AnnualValue      *float64   `json:"annualValue"`
	Currency         *string    `json:"currency" gorm:"type:text;size:3"`

	Provisions datatypes.JSONSlice[compliance.ChecklistItem] `json:"provisions" gorm:"type:jsonb"`
}

func (Contract) TableName() string {
	return "contracts"
}

// Status derives the lifecycle state from the expiry date. Contracts without
// an expiry date never expire.
func (c Contract) Status(now time.Time) dtos.ContractStatus {
	if c.ExpiryDate == nil {
		return dtos.ContractActive
	}
	if !now.Before(*c.ExpiryDate) {
		return dtos.ContractExpired
	}
	if c.ExpiryDate.Sub(now) <= ExpiringSoonWindow {
		return dtos.ContractExpiringSoon
	}
	return dtos.ContractActive
}

func (c Contract) ComplianceScore() float64 {
	return compliance.CoverageScore(c.Provisions)
}
