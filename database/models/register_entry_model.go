// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RegisterEntry is one row of the register of information on ICT third-party
// arrangements.
type RegisterEntry struct {
	Model
	Org   Org       `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`
	OrgID uuid.UUID `json:"orgId"`

	Vendor   Vendor    `json:"-" gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE;"`
	VendorID uuid.UUID `json:"vendorId"`

	Contract   *Contract  `json:"-" gorm:"foreignKey:ContractID;constraint:OnDelete:SET NULL;"`
	ContractID *uuid.UUID `json:"contractId"`

	FunctionName       string                      `json:"functionName" gorm:"type:text;not null"`
	CriticalFunction   bool                        `json:"criticalFunction"`
	DataSensitivity    string                      `json:"dataSensitivity" gorm:"type:text;not null;default:'low'"`
	ServiceType        string                      `json:"serviceType" gorm:"type:text;not null"`
	CountryOfProvision string                      `json:"countryOfProvision" gorm:"type:text;size:2"`
	SubcontractorChain datatypes.JSONSlice[string] `json:"subcontractorChain" gorm:"type:jsonb"`
	Source             string                      `json:"source" gorm:"type:text;not null;default:'manual'"`
}

func (RegisterEntry) TableName() string {
	return "register_entries"
}
