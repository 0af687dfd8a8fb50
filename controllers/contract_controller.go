// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
	"github.com/doracomply/doracomply/transformer"
	"github.com/doracomply/doracomply/utils"
)

type ContractController struct {
	contractRepository shared.ContractRepository
	vendorRepository   shared.VendorRepository
}

func NewContractController(contractRepository shared.ContractRepository, vendorRepository shared.VendorRepository) *ContractController {
	return &ContractController{
		contractRepository: contractRepository,
		vendorRepository:   vendorRepository,
	}
}

func (controller *ContractController) List(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	contracts, err := controller.contractRepository.GetByOrgID(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list contracts").WithInternal(err)
	}

	now := time.Now()
	return ctx.JSON(200, utils.Map(contracts, func(c models.Contract) dtos.ContractDTO {
		return transformer.ContractDTOFromModel(c, now)
	}))
}

func (controller *ContractController) Create(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.ContractCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	// the vendor has to belong to the same organization
	vendor, err := controller.vendorRepository.Read(req.VendorID)
	if err != nil || vendor.OrgID != org.ID {
		return echo.NewHTTPError(404, "could not find vendor")
	}

	contract := transformer.ContractCreateRequestToModel(req, org.ID)
	if err := controller.contractRepository.Create(nil, &contract); err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, transformer.ContractDTOFromModel(contract, time.Now()))
}

func (controller *ContractController) Read(ctx shared.Context) error {
	contract, err := controller.contractFromPath(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.ContractDTOFromModel(contract, time.Now()))
}

func (controller *ContractController) Update(ctx shared.Context) error {
	contract, err := controller.contractFromPath(ctx)
	if err != nil {
		return err
	}

	var patchRequest dtos.ContractPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyContractPatchRequestToModel(patchRequest, &contract)

	if updated {
		if err := controller.contractRepository.Update(nil, &contract); err != nil {
			return httpError(err)
		}
	}

	return ctx.JSON(200, transformer.ContractDTOFromModel(contract, time.Now()))
}

func (controller *ContractController) Delete(ctx shared.Context) error {
	contract, err := controller.contractFromPath(ctx)
	if err != nil {
		return err
	}

	if err := controller.contractRepository.Delete(nil, contract.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete contract").WithInternal(err)
	}

	return ctx.NoContent(200)
}

// Compliance returns the provision coverage breakdown of a single contract.
func (controller *ContractController) Compliance(ctx shared.Context) error {
	contract, err := controller.contractFromPath(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.ContractComplianceDTOFromModel(contract))
}

func (controller *ContractController) contractFromPath(ctx shared.Context) (models.Contract, error) {
	org := shared.GetOrg(ctx)

	contractRef := shared.GetParam(ctx, "contractRef")
	if contractRef == "" {
		return models.Contract{}, echo.NewHTTPError(400, "contractRef is required")
	}

	contract, err := controller.contractRepository.ReadByRef(org.ID, shared.SanitizeParam(contractRef))
	if err != nil {
		return models.Contract{}, echo.NewHTTPError(404, "could not find contract").WithInternal(err)
	}
	return contract, nil
}
