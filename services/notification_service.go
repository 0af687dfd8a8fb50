// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"github.com/google/uuid"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
)

type NotificationService struct {
	notificationRepository shared.NotificationRepository
}

func NewNotificationService(notificationRepository shared.NotificationRepository) *NotificationService {
	return &NotificationService{
		notificationRepository: notificationRepository,
	}
}

// Notify writes an in-app notification. A nil userID addresses every member
// of the organization.
func (s *NotificationService) Notify(orgID uuid.UUID, userID *string, notificationType dtos.NotificationType, title, body string) error {
	notification := models.Notification{
		OrgID:  orgID,
		UserID: userID,
		Type:   string(notificationType),
		Title:  title,
		Body:   body,
	}
	return s.notificationRepository.Create(nil, &notification)
}
