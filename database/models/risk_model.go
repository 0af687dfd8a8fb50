// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"time"

	"github.com/doracomply/doracomply/compliance"
	"github.com/google/uuid"
)

type Risk struct {
	Model
	Org   Org       `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`
	OrgID uuid.UUID `json:"orgId"`

	Title       string `json:"title" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category" gorm:"type:text;not null"`

	InherentLikelihood int `json:"inherentLikelihood" gorm:"not null"`
	InherentImpact     int `json:"inherentImpact" gorm:"not null"`
	ResidualLikelihood int `json:"residualLikelihood" gorm:"not null"`
	ResidualImpact     int `json:"residualImpact" gorm:"not null"`

	Treatment string `json:"treatment" gorm:"type:text;not null;default:'mitigate'"`
	Status    string `json:"status" gorm:"type:text;not null;default:'open'"`

	OwnerUserID *string    `json:"ownerUserId" gorm:"type:text"`
	Vendor      *Vendor    `json:"-" gorm:"foreignKey:VendorID;constraint:OnDelete:SET NULL;"`
	VendorID    *uuid.UUID `json:"vendorId"`
	ReviewDate  *time.Time `json:"reviewDate"`
}

func (Risk) TableName() string {
	return "risks"
}

func (r Risk) InherentScore() int {
	return compliance.Score(r.InherentLikelihood, r.InherentImpact)
}

func (r Risk) ResidualScore() int {
	return compliance.Score(r.ResidualLikelihood, r.ResidualImpact)
}

func (r Risk) ToRiskPoint() compliance.RiskPoint {
	return compliance.RiskPoint{
		ID:                 r.ID.String(),
		Title:              r.Title,
		InherentLikelihood: r.InherentLikelihood,
		InherentImpact:     r.InherentImpact,
		ResidualLikelihood: r.ResidualLikelihood,
		ResidualImpact:     r.ResidualImpact,
	}
}
