// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type WebhookEventType string

const (
	EventRiskCreated      WebhookEventType = "risk.created"
	EventRiskUpdated      WebhookEventType = "risk.updated"
	EventContractExpiring WebhookEventType = "contract.expiring"
	EventContractExpired  WebhookEventType = "contract.expired"
	EventDocumentParsed   WebhookEventType = "document.parsed"
	EventDocumentFailed   WebhookEventType = "document.parse_failed"
	EventWebhookTest      WebhookEventType = "webhook.test"
)

type WebhookIntegrationCreateRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     *string `json:"description"`
	URL             string  `json:"url" validate:"required,url"`
	Secret          *string `json:"secret"`
	RiskEnabled     bool    `json:"riskEnabled"`
	ContractEnabled bool    `json:"contractEnabled"`
	DocumentEnabled bool    `json:"documentEnabled"`
}

type WebhookIntegrationPatchRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	URL             *string `json:"url" validate:"omitempty,url"`
	Secret          *string `json:"secret"`
	RiskEnabled     *bool   `json:"riskEnabled"`
	ContractEnabled *bool   `json:"contractEnabled"`
	DocumentEnabled *bool   `json:"documentEnabled"`
}

// WebhookIntegrationDTO never carries the secret.
type WebhookIntegrationDTO struct {
	ID              uuid.UUID `json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	URL             string    `json:"url"`
	RiskEnabled     bool      `json:"riskEnabled"`
	ContractEnabled bool      `json:"contractEnabled"`
	DocumentEnabled bool      `json:"documentEnabled"`
}

type WebhookDeliveryDTO struct {
	ID            uuid.UUID        `json:"id"`
	CreatedAt     time.Time        `json:"createdAt"`
	WebhookID     uuid.UUID        `json:"webhookId"`
	EventType     WebhookEventType `json:"eventType"`
	Payload       map[string]any   `json:"payload"`
	StatusCode    int              `json:"statusCode"`
	Success       bool             `json:"success"`
	Attempts      int              `json:"attempts"`
	LastAttemptAt *time.Time       `json:"lastAttemptAt"`
	ResponseBody  string           `json:"responseBody"`
}

// WebhookEnvelope is the JSON body posted to integrations.
type WebhookEnvelope struct {
	Organization string           `json:"organization"`
	Event        WebhookEventType `json:"event"`
	Payload      any              `json:"payload"`
	Timestamp    time.Time        `json:"timestamp"`
}
