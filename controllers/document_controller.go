// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/services"
	"github.com/doracomply/doracomply/shared"
	"github.com/doracomply/doracomply/transformer"
	"github.com/doracomply/doracomply/utils"
)

type DocumentController struct {
	documentRepository shared.DocumentRepository
	documentService    *services.DocumentService
}

func NewDocumentController(documentRepository shared.DocumentRepository, documentService *services.DocumentService) *DocumentController {
	return &DocumentController{
		documentRepository: documentRepository,
		documentService:    documentService,
	}
}

func (controller *DocumentController) List(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	documents, err := controller.documentRepository.GetByOrgID(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list documents").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(documents, transformer.DocumentDTOFromModel))
}

func (controller *DocumentController) Create(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.DocumentCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	document := transformer.DocumentCreateRequestToModel(req, org.ID)
	if err := controller.documentRepository.Create(nil, &document); err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, transformer.DocumentDTOFromModel(document))
}

func (controller *DocumentController) Read(ctx shared.Context) error {
	document, err := controller.documentFromPath(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.DocumentDTOFromModel(document))
}

func (controller *DocumentController) Delete(ctx shared.Context) error {
	document, err := controller.documentFromPath(ctx)
	if err != nil {
		return err
	}

	if err := controller.documentRepository.Delete(nil, document.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete document").WithInternal(err)
	}

	return ctx.NoContent(200)
}

const maxDocumentSize = 25 << 20

// Upload stores the raw content of the document. Parse jobs read it back from
// the object storage.
func (controller *DocumentController) Upload(ctx shared.Context) error {
	document, err := controller.documentFromPath(ctx)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxDocumentSize))
	if err != nil {
		return echo.NewHTTPError(400, "could not read document content").WithInternal(err)
	}
	if len(data) == 0 {
		return echo.NewHTTPError(400, "document content is empty")
	}

	if err := controller.documentService.StoreContent(ctx.Request().Context(), &document, ctx.Request().Header.Get("Content-Type"), data); err != nil {
		return echo.NewHTTPError(500, "could not store document content").WithInternal(err)
	}

	return ctx.JSON(200, transformer.DocumentDTOFromModel(document))
}

// Parse queues the asynchronous extraction job. The response carries the
// processing state, clients poll the document until it completes.
func (controller *DocumentController) Parse(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	document, err := controller.documentFromPath(ctx)
	if err != nil {
		return err
	}

	if document.Kind != string(dtos.DocumentSOC2Report) {
		return echo.NewHTTPError(400, "only soc2_report documents can be parsed")
	}

	if err := controller.documentService.StartParseJob(org, document); err != nil {
		return echo.NewHTTPError(409, "document is already being parsed").WithInternal(err)
	}

	document.ParseStatus = string(dtos.ParseProcessing)
	return ctx.JSON(202, transformer.DocumentDTOFromModel(document))
}

// Extraction returns the full structured extraction of a parsed document.
func (controller *DocumentController) Extraction(ctx shared.Context) error {
	document, err := controller.documentFromPath(ctx)
	if err != nil {
		return err
	}

	if document.ParseStatus != string(dtos.ParseCompleted) {
		return echo.NewHTTPError(404, "document has no extraction")
	}

	return ctx.JSON(200, document.Extraction)
}

func (controller *DocumentController) documentFromPath(ctx shared.Context) (models.Document, error) {
	org := shared.GetOrg(ctx)

	documentID, err := uuid.Parse(ctx.Param("documentID"))
	if err != nil {
		return models.Document{}, echo.NewHTTPError(400, "invalid document id")
	}

	document, err := controller.documentRepository.ReadForOrg(org.ID, documentID)
	if err != nil {
		return models.Document{}, echo.NewHTTPError(404, "could not find document").WithInternal(err)
	}
	return document, nil
}
