// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"time"

	databasetypes "github.com/doracomply/doracomply/database/types"
	"github.com/google/uuid"
)

type WebhookIntegration struct {
	Model
	Name        string  `json:"name" gorm:"type:text;not null"`
	Description *string `json:"description" gorm:"type:text"`
	URL         string  `json:"url" gorm:"column:url;not null"`
	Secret      *string `json:"-" gorm:"column:secret"`

	RiskEnabled     bool `json:"riskEnabled" gorm:"column:risk_enabled"`
	ContractEnabled bool `json:"contractEnabled" gorm:"column:contract_enabled"`
	DocumentEnabled bool `json:"documentEnabled" gorm:"column:document_enabled"`

	Org   Org       `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`
	OrgID uuid.UUID `json:"orgId" gorm:"column:org_id"`
}

func (WebhookIntegration) TableName() string {
	return "webhook_integrations"
}

type WebhookDelivery struct {
	Model
	Webhook   WebhookIntegration `json:"-" gorm:"foreignKey:WebhookID;constraint:OnDelete:CASCADE;"`
	WebhookID uuid.UUID          `json:"webhookId"`

	EventType  string              `json:"eventType" gorm:"type:text;not null"`
	Payload    databasetypes.JSONB `json:"payload" gorm:"type:jsonb"`
	StatusCode int                 `json:"statusCode"`
	Success    bool                `json:"success"`
	Attempts   int                 `json:"attempts"`

	LastAttemptAt *time.Time `json:"lastAttemptAt"`
	// ResponseBody is truncated to 1 KiB before storing.
	ResponseBody string `json:"responseBody" gorm:"type:text"`
}

func (WebhookDelivery) TableName() string {
	return "webhook_deliveries"
}
