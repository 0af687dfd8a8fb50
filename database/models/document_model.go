// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"time"

	databasetypes "github.com/doracomply/doracomply/database/types"
	"github.com/google/uuid"
)

type Document struct {
	Model
	Org   Org       `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`
	OrgID uuid.UUID `json:"orgId"`

	Vendor   *Vendor    `json:"-" gorm:"foreignKey:VendorID;constraint:OnDelete:SET NULL;"`
	VendorID *uuid.UUID `json:"vendorId"`

	FileName    string `json:"fileName" gorm:"type:text;not null"`
	StorageKey  string `json:"storageKey" gorm:"type:text;not null"`
	ContentType string `json:"contentType" gorm:"type:text;not null"`
	Kind        string `json:"kind" gorm:"type:text;not null;default:'other'"`

	ParseStatus string     `json:"parseStatus" gorm:"type:text;not null;default:'pending'"`
	ParseError  *string    `json:"parseError" gorm:"type:text"`
	ParsedAt    *time.Time `json:"parsedAt"`

	// Metadata holds audit firm, opinion, period and TSC list. Extraction
	// holds the full structured result, schema-validated before storing.
	Metadata   databasetypes.JSONB `json:"metadata" gorm:"type:jsonb"`
	Extraction databasetypes.JSONB `json:"extraction" gorm:"type:jsonb"`
}

func (Document) TableName() string {
	return "documents"
}
