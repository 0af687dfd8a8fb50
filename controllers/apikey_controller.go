// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
	"github.com/doracomply/doracomply/transformer"
	"github.com/doracomply/doracomply/utils"
)

type APIKeyController struct {
	apiKeyRepository shared.APIKeyRepository
	apiKeyService    shared.APIKeyService
}

func NewAPIKeyController(apiKeyRepository shared.APIKeyRepository, apiKeyService shared.APIKeyService) *APIKeyController {
	return &APIKeyController{
		apiKeyRepository: apiKeyRepository,
		apiKeyService:    apiKeyService,
	}
}

// Whoami echoes the identity behind the presented credentials.
func Whoami(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	return ctx.JSON(200, dtos.WhoamiDTO{
		UserID: session.GetUserID(),
		Scopes: strings.Join(session.GetScopes(), " "),
	})
}

func (controller *APIKeyController) List(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	apiKeys, err := controller.apiKeyRepository.ListByUserID(session.GetUserID())
	if err != nil {
		return echo.NewHTTPError(500, "could not list api keys").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(apiKeys, transformer.APIKeyDTOFromModel))
}

func (controller *APIKeyController) Create(ctx shared.Context) error {
	org := shared.GetOrg(ctx)
	session := shared.GetSession(ctx)

	var req dtos.APIKeyCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	apiKey, token, err := controller.apiKeyService.CreateToken(org.ID, session.GetUserID(), req)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, dtos.APIKeyCreatedDTO{
		APIKeyDTO: transformer.APIKeyDTOFromModel(apiKey),
		Token:     token,
	})
}

func (controller *APIKeyController) Delete(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	apiKeyID, err := uuid.Parse(ctx.Param("apiKeyID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid api key id")
	}

	apiKey, err := controller.apiKeyRepository.Read(apiKeyID)
	if err != nil || apiKey.GetUserID() != session.GetUserID() {
		return echo.NewHTTPError(404, "could not find api key")
	}

	if err := controller.apiKeyRepository.Delete(nil, apiKey.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete api key").WithInternal(err)
	}

	return ctx.NoContent(200)
}
