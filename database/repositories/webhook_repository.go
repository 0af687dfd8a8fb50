// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"strings"
	"time"

	"github.com/doracomply/doracomply/common"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
	"github.com/google/uuid"
)

type webhookIntegrationRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.WebhookIntegration, shared.DB]
}

func NewWebhookIntegrationRepository(db shared.DB) *webhookIntegrationRepository {
	return &webhookIntegrationRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.WebhookIntegration](db),
	}
}

func (g *webhookIntegrationRepository) FindByOrgID(orgID uuid.UUID) ([]models.WebhookIntegration, error) {
	var integrations []models.WebhookIntegration
	err := g.db.Where("org_id = ?", orgID).Order("created_at asc").Find(&integrations).Error
	return integrations, err
}

// FindEnabledForEvent returns the integrations of the organization that
// subscribed to the topic of the event. The topic is the prefix of the event
// type, e.g. risk.created subscribes through risk_enabled.
func (g *webhookIntegrationRepository) FindEnabledForEvent(orgID uuid.UUID, eventType dtos.WebhookEventType) ([]models.WebhookIntegration, error) {
	query := g.db.Where("org_id = ?", orgID)

	topic, _, _ := strings.Cut(string(eventType), ".")
	switch topic {
	case "risk":
		query = query.Where("risk_enabled = ?", true)
	case "contract":
		query = query.Where("contract_enabled = ?", true)
	case "document":
		query = query.Where("document_enabled = ?", true)
	case "webhook":
		// test events go to every integration of the org
	default:
		return []models.WebhookIntegration{}, nil
	}

	var integrations []models.WebhookIntegration
	err := query.Find(&integrations).Error
	return integrations, err
}

type webhookDeliveryRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.WebhookDelivery, shared.DB]
}

func NewWebhookDeliveryRepository(db shared.DB) *webhookDeliveryRepository {
	return &webhookDeliveryRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.WebhookDelivery](db),
	}
}

func (g *webhookDeliveryRepository) ListByWebhookID(webhookID uuid.UUID, pageInfo shared.PageInfo) (shared.Paged[models.WebhookDelivery], error) {
	query := g.db.Model(&models.WebhookDelivery{}).Where("webhook_id = ?", webhookID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paged[models.WebhookDelivery]{}, err
	}

	var deliveries []models.WebhookDelivery
	err := pageInfo.ApplyOnDB(query.Order("created_at desc")).Find(&deliveries).Error
	return shared.NewPaged(pageInfo, total, deliveries), err
}

func (g *webhookDeliveryRepository) FindRetryable(maxAttempts int) ([]models.WebhookDelivery, error) {
	var deliveries []models.WebhookDelivery
	err := g.db.Where("success = ? AND attempts < ?", false, maxAttempts).
		Order("created_at asc").Find(&deliveries).Error
	return deliveries, err
}

// FindFailingSince returns integrations without a single successful delivery
// since the given time, but with at least one failed attempt in that window.
func (g *webhookDeliveryRepository) FindFailingSince(since time.Time) ([]models.WebhookIntegration, error) {
	var integrations []models.WebhookIntegration
	err := g.db.Model(&models.WebhookIntegration{}).
		Where("id IN (?)", g.db.Model(&models.WebhookDelivery{}).
			Select("webhook_id").
			Where("success = ? AND last_attempt_at >= ?", false, since)).
		Where("id NOT IN (?)", g.db.Model(&models.WebhookDelivery{}).
			Select("webhook_id").
			Where("success = ? AND last_attempt_at >= ?", true, since)).
		Find(&integrations).Error
	return integrations, err
}
