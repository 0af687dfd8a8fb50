// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/google/uuid"
)

func WebhookIntegrationCreateRequestToModel(c dtos.WebhookIntegrationCreateRequest, orgID uuid.UUID) models.WebhookIntegration {
	return models.WebhookIntegration{
		OrgID:           orgID,
		Name:            c.Name,
		Description:     c.Description,
		URL:             c.URL,
		Secret:          c.Secret,
		RiskEnabled:     c.RiskEnabled,
		ContractEnabled: c.ContractEnabled,
		DocumentEnabled: c.DocumentEnabled,
	}
}

func ApplyWebhookIntegrationPatchRequestToModel(p dtos.WebhookIntegrationPatchRequest, integration *models.WebhookIntegration) bool {
	updated := false

	if p.Name != nil {
		updated = true
		integration.Name = *p.Name
	}

	if p.Description != nil {
		updated = true
		integration.Description = p.Description
	}

	if p.URL != nil {
		updated = true
		integration.URL = *p.URL
	}

	if p.Secret != nil {
		updated = true
		integration.Secret = p.Secret
	}

	if p.RiskEnabled != nil {
		updated = true
		integration.RiskEnabled = *p.RiskEnabled
	}

	if p.ContractEnabled != nil {
		updated = true
		integration.ContractEnabled = *p.ContractEnabled
	}

	if p.DocumentEnabled != nil {
		updated = true
		integration.DocumentEnabled = *p.DocumentEnabled
	}

	return updated
}

// WebhookIntegrationDTOFromModel strips the secret.
func WebhookIntegrationDTOFromModel(integration models.WebhookIntegration) dtos.WebhookIntegrationDTO {
	return dtos.WebhookIntegrationDTO{
		ID:              integration.ID,
		CreatedAt:       integration.CreatedAt,
		UpdatedAt:       integration.UpdatedAt,
		Name:            integration.Name,
		Description:     integration.Description,
		URL:             integration.URL,
		RiskEnabled:     integration.RiskEnabled,
		ContractEnabled: integration.ContractEnabled,
		DocumentEnabled: integration.DocumentEnabled,
	}
}

func WebhookDeliveryDTOFromModel(delivery models.WebhookDelivery) dtos.WebhookDeliveryDTO {
	return dtos.WebhookDeliveryDTO{
		ID:            delivery.ID,
		CreatedAt:     delivery.CreatedAt,
		WebhookID:     delivery.WebhookID,
		EventType:     dtos.WebhookEventType(delivery.EventType),
		Payload:       delivery.Payload,
		StatusCode:    delivery.StatusCode,
		Success:       delivery.Success,
		Attempts:      delivery.Attempts,
		LastAttemptAt: delivery.LastAttemptAt,
		ResponseBody:  delivery.ResponseBody,
	}
}
