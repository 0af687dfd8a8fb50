// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/services"
	"github.com/doracomply/doracomply/shared"
	"github.com/doracomply/doracomply/transformer"
)

type RegisterController struct {
	registerEntryRepository shared.RegisterEntryRepository
	vendorRepository        shared.VendorRepository
	registerService         *services.RegisterService
}

func NewRegisterController(registerEntryRepository shared.RegisterEntryRepository, vendorRepository shared.VendorRepository, registerService *services.RegisterService) *RegisterController {
	return &RegisterController{
		registerEntryRepository: registerEntryRepository,
		vendorRepository:        vendorRepository,
		registerService:         registerService,
	}
}

func (controller *RegisterController) List(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	entries, err := controller.registerEntryRepository.GetByOrgID(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list register entries").WithInternal(err)
	}

	vendors, err := controller.vendorRepository.GetByOrgID(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list vendors").WithInternal(err)
	}
	names := make(map[uuid.UUID]string, len(vendors))
	for _, vendor := range vendors {
		names[vendor.ID] = vendor.Name
	}

	result := make([]dtos.RegisterEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, transformer.RegisterEntryDTOFromModel(entry, names[entry.VendorID]))
	}
	return ctx.JSON(200, result)
}

func (controller *RegisterController) Create(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.RegisterEntryCreateRequest
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

	entry := transformer.RegisterEntryCreateRequestToModel(req, org.ID)
	if err := controller.registerEntryRepository.Create(nil, &entry); err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, transformer.RegisterEntryDTOFromModel(entry, vendor.Name))
}

func (controller *RegisterController) Delete(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	entryID, err := uuid.Parse(ctx.Param("entryID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid register entry id")
	}

	entry, err := controller.registerEntryRepository.ReadForOrg(org.ID, entryID)
	if err != nil {
		return echo.NewHTTPError(404, "could not find register entry").WithInternal(err)
	}

	if err := controller.registerEntryRepository.Delete(nil, entry.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete register entry").WithInternal(err)
	}

	return ctx.NoContent(200)
}

// PopulateFromSOC2 builds register entries and a DORA coverage report from a
// parsed SOC 2 document.
func (controller *RegisterController) PopulateFromSOC2(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.PopulateFromSOC2Request
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	response, err := controller.registerService.PopulateFromSOC2(org, req)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, response)
}

// Export streams the register of information as CSV.
func (controller *RegisterController) Export(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	data, err := controller.registerService.ExportCSV(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not export register").WithInternal(err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=register-of-information-%s.csv", org.Slug))
	return ctx.Blob(200, "text/csv", data)
}
