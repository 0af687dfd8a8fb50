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

type VendorController struct {
	vendorRepository   shared.VendorRepository
	contractRepository shared.ContractRepository
	vendorService      shared.VendorService
}

func NewVendorController(vendorRepository shared.VendorRepository, contractRepository shared.ContractRepository, vendorService shared.VendorService) *VendorController {
	return &VendorController{
		vendorRepository:   vendorRepository,
		contractRepository: contractRepository,
		vendorService:      vendorService,
	}
}

func (controller *VendorController) List(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	pageInfo := shared.GetPageInfo(ctx)
	search := ctx.QueryParam("search")
	filter := shared.GetFilterQuery(ctx)
	sort := shared.GetSortQuery(ctx)

	vendors, err := controller.vendorRepository.GetByOrgIDPaged(org.ID, pageInfo, search, filter, sort)
	if err != nil {
		return echo.NewHTTPError(500, "could not list vendors").WithInternal(err)
	}

	return ctx.JSON(200, vendors.Map(func(v models.Vendor) any {
		return transformer.VendorDTOFromModel(v)
	}))
}

func (controller *VendorController) Create(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.VendorCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	vendor := transformer.VendorCreateRequestToModel(req, org.ID)
	if err := controller.vendorService.CreateVendor(ctx, &vendor); err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, transformer.VendorDTOFromModel(vendor))
}

func (controller *VendorController) Read(ctx shared.Context) error {
	vendor := shared.GetVendor(ctx)

	contracts, err := controller.contractRepository.GetByVendorID(vendor.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not get contracts").WithInternal(err)
	}

	openRisks, err := controller.vendorRepository.CountOpenRisks(vendor.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not count open risks").WithInternal(err)
	}

	now := time.Now()
	return ctx.JSON(200, dtos.VendorDetailsDTO{
		VendorDTO: transformer.VendorDTOFromModel(vendor),
		Contracts: utils.Map(contracts, func(c models.Contract) dtos.ContractDTO {
			return transformer.ContractDTOFromModel(c, now)
		}),
		OpenRisks: int(openRisks),
	})
}

func (controller *VendorController) Update(ctx shared.Context) error {
	vendor := shared.GetVendor(ctx)

	var patchRequest dtos.VendorPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyVendorPatchRequestToModel(patchRequest, &vendor)

	if updated {
		if err := controller.vendorRepository.Update(nil, &vendor); err != nil {
			return httpError(err)
		}
	}

	return ctx.JSON(200, transformer.VendorDTOFromModel(vendor))
}

func (controller *VendorController) Delete(ctx shared.Context) error {
	vendor := shared.GetVendor(ctx)

	if err := controller.vendorRepository.Delete(nil, vendor.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete vendor").WithInternal(err)
	}

	return ctx.NoContent(200)
}

// GleifSync refreshes the vendor from the GLEIF registry.
func (controller *VendorController) GleifSync(ctx shared.Context) error {
	vendor := shared.GetVendor(ctx)

	if err := controller.vendorService.SyncGleif(ctx.Request().Context(), &vendor); err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, transformer.VendorDTOFromModel(vendor))
}
