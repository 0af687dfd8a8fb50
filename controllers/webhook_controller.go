// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
	"github.com/doracomply/doracomply/transformer"
	"github.com/doracomply/doracomply/utils"
)

type WebhookController struct {
	integrationRepository shared.WebhookIntegrationRepository
	deliveryRepository    shared.WebhookDeliveryRepository
	dispatcher            shared.WebhookDispatcher
}

func NewWebhookController(integrationRepository shared.WebhookIntegrationRepository, deliveryRepository shared.WebhookDeliveryRepository, dispatcher shared.WebhookDispatcher) *WebhookController {
	return &WebhookController{
		integrationRepository: integrationRepository,
		deliveryRepository:    deliveryRepository,
		dispatcher:            dispatcher,
	}
}

func (controller *WebhookController) List(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	integrations, err := controller.integrationRepository.FindByOrgID(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list webhooks").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(integrations, transformer.WebhookIntegrationDTOFromModel))
}

func (controller *WebhookController) Create(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.WebhookIntegrationCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	integration := transformer.WebhookIntegrationCreateRequestToModel(req, org.ID)
	if err := controller.integrationRepository.Create(nil, &integration); err != nil {
		return httpError(err)
	}

	return ctx.JSON(200, transformer.WebhookIntegrationDTOFromModel(integration))
}

func (controller *WebhookController) Update(ctx shared.Context) error {
	integration, err := controller.integrationFromPath(ctx)
	if err != nil {
		return err
	}

	var patchRequest dtos.WebhookIntegrationPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyWebhookIntegrationPatchRequestToModel(patchRequest, &integration)

	if updated {
		if err := controller.integrationRepository.Update(nil, &integration); err != nil {
			return httpError(err)
		}
	}

	return ctx.JSON(200, transformer.WebhookIntegrationDTOFromModel(integration))
}

func (controller *WebhookController) Delete(ctx shared.Context) error {
	integration, err := controller.integrationFromPath(ctx)
	if err != nil {
		return err
	}

	if err := controller.integrationRepository.Delete(nil, integration.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete webhook").WithInternal(err)
	}

	return ctx.NoContent(200)
}

// Test posts a webhook.test envelope synchronously and reports the outcome.
func (controller *WebhookController) Test(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	integration, err := controller.integrationFromPath(ctx)
	if err != nil {
		return err
	}

	envelope := dtos.WebhookEnvelope{
		Organization: org.Slug,
		Event:        dtos.EventWebhookTest,
		Payload:      map[string]any{"message": "test delivery"},
		Timestamp:    time.Now(),
	}

	resp, err := controller.dispatcher.Deliver(integration, envelope)
	if err != nil {
		return ctx.JSON(200, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
	}
	defer resp.Body.Close()

	return ctx.JSON(200, map[string]any{
		"success":    resp.StatusCode >= 200 && resp.StatusCode < 300,
		"statusCode": resp.StatusCode,
	})
}

// Deliveries pages through the delivery log of a single integration.
func (controller *WebhookController) Deliveries(ctx shared.Context) error {
	integration, err := controller.integrationFromPath(ctx)
	if err != nil {
		return err
	}

	pageInfo := shared.GetPageInfo(ctx)
	deliveries, err := controller.deliveryRepository.ListByWebhookID(integration.ID, pageInfo)
	if err != nil {
		return echo.NewHTTPError(500, "could not list deliveries").WithInternal(err)
	}

	return ctx.JSON(200, deliveries.Map(func(d models.WebhookDelivery) any {
		return transformer.WebhookDeliveryDTOFromModel(d)
	}))
}

func (controller *WebhookController) integrationFromPath(ctx shared.Context) (models.WebhookIntegration, error) {
	org := shared.GetOrg(ctx)

	webhookID, err := uuid.Parse(ctx.Param("webhookID"))
	if err != nil {
		return models.WebhookIntegration{}, echo.NewHTTPError(400, "invalid webhook id")
	}

	integration, err := controller.integrationRepository.Read(webhookID)
	if err != nil || integration.OrgID != org.ID {
		return models.WebhookIntegration{}, echo.NewHTTPError(404, "could not find webhook")
	}
	return integration, nil
}
