// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"context"
	"net/http"
	"time"

	"github.com/doracomply/doracomply/common"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/google/uuid"
)

type OrganizationRepository interface {
	common.Repository[uuid.UUID, models.Org, DB]
	ReadBySlug(slug string) (models.Org, error)
	GetOrgByID(id uuid.UUID) (models.Org, error)
	Update(tx DB, organization *models.Org) error
}

type VendorRepository interface {
	common.Repository[uuid.UUID, models.Vendor, DB]
	GetByOrgID(orgID uuid.UUID) ([]models.Vendor, error)
	GetByOrgIDPaged(orgID uuid.UUID, pageInfo PageInfo, search string, filter []FilterQuery, sort []SortQuery) (Paged[models.Vendor], error)
	ReadBySlug(orgID uuid.UUID, slug string) (models.Vendor, error)
	CountOpenRisks(vendorID uuid.UUID) (int64, error)
}

type ContractRepository interface {
	common.Repository[uuid.UUID, models.Contract, DB]
	GetByOrgID(orgID uuid.UUID) ([]models.Contract, error)
	GetByVendorID(vendorID uuid.UUID) ([]models.Contract, error)
	ReadByRef(orgID uuid.UUID, contractRef string) (models.Contract, error)
	GetExpiringBefore(deadline time.Time) ([]models.Contract, error)
}

type DocumentRepository interface {
	common.Repository[uuid.UUID, models.Document, DB]
	GetByOrgID(orgID uuid.UUID) ([]models.Document, error)
	ReadForOrg(orgID uuid.UUID, id uuid.UUID) (models.Document, error)
}

type RiskRepository interface {
	common.Repository[uuid.UUID, models.Risk, DB]
	GetByOrgID(orgID uuid.UUID) ([]models.Risk, error)
	GetOpenByOrgID(orgID uuid.UUID) ([]models.Risk, error)
	ReadForOrg(orgID uuid.UUID, id uuid.UUID) (models.Risk, error)
	CountReviewOverdue(orgID uuid.UUID, now time.Time) (int64, error)
}

type RegisterEntryRepository interface {
	common.Repository[uuid.UUID, models.RegisterEntry, DB]
	GetByOrgID(orgID uuid.UUID) ([]models.RegisterEntry, error)
	ReadForOrg(orgID uuid.UUID, id uuid.UUID) (models.RegisterEntry, error)
}

type APIKeyRepository interface {
	common.Repository[uuid.UUID, models.APIKey, DB]
	GetByTokenHash(hash string) (models.APIKey, error)
	ListByUserID(userID string) ([]models.APIKey, error)
	MarkAsLastUsedNow(id uuid.UUID) error
}

type WebhookIntegrationRepository interface {
	common.Repository[uuid.UUID, models.WebhookIntegration, DB]
	FindByOrgID(orgID uuid.UUID) ([]models.WebhookIntegration, error)
	FindEnabledForEvent(orgID uuid.UUID, eventType dtos.WebhookEventType) ([]models.WebhookIntegration, error)
}

type WebhookDeliveryRepository interface {
	common.Repository[uuid.UUID, models.WebhookDelivery, DB]
	ListByWebhookID(webhookID uuid.UUID, pageInfo PageInfo) (Paged[models.WebhookDelivery], error)
	FindRetryable(maxAttempts int) ([]models.WebhookDelivery, error)
	FindFailingSince(since time.Time) ([]models.WebhookIntegration, error)
}

type NotificationRepository interface {
	common.Repository[uuid.UUID, models.Notification, DB]
	ListByOrgAndUser(orgID uuid.UUID, userID string) ([]models.Notification, error)
	MarkRead(tx DB, orgID uuid.UUID, id uuid.UUID) error
	MarkAllRead(tx DB, orgID uuid.UUID, userID string) error
}

type ConfigRepository interface {
	Save(tx DB, config *models.Config) error
	Read(key string) (models.Config, error)
	GetDB(tx DB) DB
}

type ConfigService interface {
	// retrieves the value for the given key and marshals it into v
	GetJSONConfig(key string, v any) error
	SetJSONConfig(key string, v any) error
}

type OrgRiskHistoryRepository interface {
	Save(tx DB, snapshot *models.OrgRiskHistory) error
	GetHistory(orgID uuid.UUID, start, end time.Time) ([]models.OrgRiskHistory, error)
}

type OrgService interface {
	CreateOrganization(ctx Context, organization *models.Org) error
	ReadBySlug(slug string) (*models.Org, error)
}

type VendorService interface {
	CreateVendor(ctx Context, vendor *models.Vendor) error
	SyncGleif(ctx context.Context, vendor *models.Vendor) error
}

type APIKeyService interface {
	VerifyToken(token string) (models.APIKey, error)
	CreateToken(orgID uuid.UUID, userID string, request dtos.APIKeyCreateRequest) (models.APIKey, string, error)
}

// GleifClient resolves LEIs against the global GLEIF registry.
type GleifClient interface {
	LookupLEI(ctx context.Context, lei string) (dtos.GleifRecordDTO, error)
}

// DocumentExtractor turns raw report text into a structured extraction.
type DocumentExtractor interface {
	ExtractSOC2(ctx context.Context, text string) (dtos.SOC2Extraction, error)
	Chat(ctx context.Context, system string, messages []dtos.CopilotMessage) (string, error)
}

// ObjectStorage fetches uploaded documents by storage key.
type ObjectStorage interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
	Store(ctx context.Context, key string, contentType string, data []byte) error
}

// WebhookDispatcher fans an event out to every enabled integration of the
// organization and records the deliveries.
type WebhookDispatcher interface {
	Dispatch(org models.Org, eventType dtos.WebhookEventType, payload any)
	Deliver(integration models.WebhookIntegration, envelope dtos.WebhookEnvelope) (*http.Response, error)
}

type NotificationService interface {
	Notify(orgID uuid.UUID, userID *string, notificationType dtos.NotificationType, title, body string) error
}

type StatisticsService interface {
	RiskDistribution(orgID uuid.UUID) (map[string]int, error)
	SnapshotRiskDistribution(orgID uuid.UUID, at time.Time) error
}
