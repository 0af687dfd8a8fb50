// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/doracomply/doracomply/common"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/shared"
	"github.com/google/uuid"
)

type notificationRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Notification, shared.DB]
}

func NewNotificationRepository(db shared.DB) *notificationRepository {
	return &notificationRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Notification](db),
	}
}

// ListByOrgAndUser returns notifications addressed to the user plus the
// org-wide ones without a user id.
func (g *notificationRepository) ListByOrgAndUser(orgID uuid.UUID, userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := g.db.Where("org_id = ? AND (user_id IS NULL OR user_id = ?)", orgID, userID).
		Order("created_at desc").Find(&notifications).Error
	return notifications, err
}

func (g *notificationRepository) MarkRead(tx shared.DB, orgID uuid.UUID, id uuid.UUID) error {
	return g.GetDB(tx).Model(&models.Notification{}).
		Where("org_id = ? AND id = ?", orgID, id).
		Update("read", true).Error
}

func (g *notificationRepository) MarkAllRead(tx shared.DB, orgID uuid.UUID, userID string) error {
	return g.GetDB(tx).Model(&models.Notification{}).
		Where("org_id = ? AND (user_id IS NULL OR user_id = ?)", orgID, userID).
		Update("read", true).Error
}
