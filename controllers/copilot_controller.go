// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/services"
	"github.com/doracomply/doracomply/shared"
)

type CopilotController struct {
	copilotService *services.CopilotService
}

func NewCopilotController(copilotService *services.CopilotService) *CopilotController {
	return &CopilotController{
		copilotService: copilotService,
	}
}

// Chat answers a compliance question grounded on the data of the
// organization.
func (controller *CopilotController) Chat(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.CopilotRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	reply, err := controller.copilotService.Chat(ctx.Request().Context(), org, req.Messages)
	if err != nil {
		return echo.NewHTTPError(500, "could not generate a reply").WithInternal(err)
	}

	return ctx.JSON(200, dtos.CopilotResponse{Reply: reply})
}
