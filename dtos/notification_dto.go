// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationContractExpiring NotificationType = "contract_expiring"
	NotificationDocumentParsed   NotificationType = "document_parsed"
	NotificationRiskReviewDue    NotificationType = "risk_review_due"
	NotificationWebhookFailing   NotificationType = "webhook_failing"
)

type NotificationDTO struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Read      bool             `json:"read"`
}
