// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/shared"
	"github.com/doracomply/doracomply/transformer"
	"github.com/doracomply/doracomply/utils"
)

type NotificationController struct {
	notificationRepository shared.NotificationRepository
}

func NewNotificationController(notificationRepository shared.NotificationRepository) *NotificationController {
	return &NotificationController{
		notificationRepository: notificationRepository,
	}
}

// List returns the notifications addressed to the whole organization plus the
// ones addressed to the calling user.
func (controller *NotificationController) List(ctx shared.Context) error {
	org := shared.GetOrg(ctx)
	session := shared.GetSession(ctx)

	notifications, err := controller.notificationRepository.ListByOrgAndUser(org.ID, session.GetUserID())
	if err != nil {
		return echo.NewHTTPError(500, "could not list notifications").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(notifications, transformer.NotificationDTOFromModel))
}

func (controller *NotificationController) MarkRead(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	notificationID, err := uuid.Parse(ctx.Param("notificationID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid notification id")
	}

	if err := controller.notificationRepository.MarkRead(nil, org.ID, notificationID); err != nil {
		return echo.NewHTTPError(500, "could not mark notification as read").WithInternal(err)
	}

	return ctx.NoContent(200)
}

func (controller *NotificationController) MarkAllRead(ctx shared.Context) error {
	org := shared.GetOrg(ctx)
	session := shared.GetSession(ctx)

	if err := controller.notificationRepository.MarkAllRead(nil, org.ID, session.GetUserID()); err != nil {
		return echo.NewHTTPError(500, "could not mark notifications as read").WithInternal(err)
	}

	return ctx.NoContent(200)
}
