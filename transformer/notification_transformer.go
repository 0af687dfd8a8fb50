// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
)

func NotificationDTOFromModel(notification models.Notification) dtos.NotificationDTO {
	return dtos.NotificationDTO{
		ID:        notification.ID,
		CreatedAt: notification.CreatedAt,
		Type:      dtos.NotificationType(notification.Type),
		Title:     notification.Title,
		Body:      notification.Body,
		Read:      notification.Read,
	}
}
