// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

type Org struct {
	Model
	Name                   string  `json:"name" gorm:"type:text"`
	Slug                   string  `json:"slug" gorm:"type:text;unique;not null;index"`
	LEI                    *string `json:"lei" gorm:"type:text;uniqueIndex:idx_organizations_lei"`
	ContactEmail           *string `json:"contactEmail" gorm:"type:text"`
	Country                *string `json:"country" gorm:"type:text"`
	Industry               *string `json:"industry" gorm:"type:text"`
	NumberOfEmployees      *int    `json:"numberOfEmployees"`
	CriticalInfrastructure bool    `json:"criticalInfrastructure"`
	FinancialEntity        bool    `json:"financialEntity"`
	NIS2Classification     string  `json:"nis2Classification" gorm:"type:text;default:'out_of_scope'"`
	// RiskTolerance is a score on the 1..25 matrix scale. Risks scoring above
	// it are flagged on the heat map.
	RiskTolerance int    `json:"riskTolerance" gorm:"default:9"`
	Description   string `json:"description" gorm:"type:text"`

	Webhooks []WebhookIntegration `json:"webhooks" gorm:"foreignKey:OrgID;"`
}

func (Org) TableName() string {
	return "organizations"
}
