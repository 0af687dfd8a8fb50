// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
)

type GleifController struct {
	gleifClient shared.GleifClient
}

func NewGleifController(gleifClient shared.GleifClient) *GleifController {
	return &GleifController{
		gleifClient: gleifClient,
	}
}

// Validate resolves an LEI against the GLEIF registry without touching any
// vendor.
func (controller *GleifController) Validate(ctx shared.Context) error {
	var req dtos.GleifValidateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	record, err := controller.gleifClient.LookupLEI(ctx.Request().Context(), req.LEI)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, record)
}
