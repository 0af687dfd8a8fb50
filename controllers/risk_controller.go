// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/compliance"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
	"github.com/doracomply/doracomply/transformer"
	"github.com/doracomply/doracomply/utils"
)

type RiskController struct {
	riskRepository shared.RiskRepository
	dispatcher     shared.WebhookDispatcher
}

func NewRiskController(riskRepository shared.RiskRepository, dispatcher shared.WebhookDispatcher) *RiskController {
	return &RiskController{
		riskRepository: riskRepository,
		dispatcher:     dispatcher,
	}
}

func (controller *RiskController) List(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	risks, err := controller.riskRepository.GetByOrgID(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list risks").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(risks, func(r models.Risk) dtos.RiskDTO {
		return transformer.RiskDTOFromModel(r, org.RiskTolerance)
	}))
}

func (controller *RiskController) Create(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.RiskCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	risk := transformer.RiskCreateRequestToModel(req, org.ID)
	if err := controller.riskRepository.Create(nil, &risk); err != nil {
		return httpError(err)
	}

	dto := transformer.RiskDTOFromModel(risk, org.RiskTolerance)
	controller.dispatcher.Dispatch(org, dtos.EventRiskCreated, dto)

	return ctx.JSON(200, dto)
}

func (controller *RiskController) Read(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	risk, err := controller.riskFromPath(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.RiskDTOFromModel(risk, org.RiskTolerance))
}

func (controller *RiskController) Update(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	risk, err := controller.riskFromPath(ctx)
	if err != nil {
		return err
	}

	var patchRequest dtos.RiskPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyRiskPatchRequestToModel(patchRequest, &risk)

	if updated {
		if err := controller.riskRepository.Update(nil, &risk); err != nil {
			return httpError(err)
		}
	}

	dto := transformer.RiskDTOFromModel(risk, org.RiskTolerance)
	if updated {
		controller.dispatcher.Dispatch(org, dtos.EventRiskUpdated, dto)
	}

	return ctx.JSON(200, dto)
}

func (controller *RiskController) Delete(ctx shared.Context) error {
	risk, err := controller.riskFromPath(ctx)
	if err != nil {
		return err
	}

	if err := controller.riskRepository.Delete(nil, risk.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete risk").WithInternal(err)
	}

	return ctx.NoContent(200)
}

// HeatMap renders the 5x5 grid over the open risks of the organization.
// ?dimension=inherent|residual selects the scores, residual is the default.
func (controller *RiskController) HeatMap(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	dim := compliance.DimensionResidual
	if ctx.QueryParam("dimension") == string(compliance.DimensionInherent) {
		dim = compliance.DimensionInherent
	}

	risks, err := controller.riskRepository.GetOpenByOrgID(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list risks").WithInternal(err)
	}

	return ctx.JSON(200, transformer.HeatMapDTOFromRisks(risks, dim, org.RiskTolerance))
}

func (controller *RiskController) riskFromPath(ctx shared.Context) (models.Risk, error) {
	org := shared.GetOrg(ctx)

	riskID, err := uuid.Parse(ctx.Param("riskID"))
	if err != nil {
		return models.Risk{}, echo.NewHTTPError(400, "invalid risk id")
	}

	risk, err := controller.riskRepository.ReadForOrg(org.ID, riskID)
	if err != nil {
		return models.Risk{}, echo.NewHTTPError(404, "could not find risk").WithInternal(err)
	}
	return risk, nil
}
