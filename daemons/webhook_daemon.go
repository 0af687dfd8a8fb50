// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package daemons

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/monitoring"
)

const maxRedeliveryAttempts = 5

// RedeliverFailedWebhooks retries deliveries that never got a 2xx response.
// The in-process retry loop of the dispatcher covers transient failures, this
// daemon covers endpoints that were down for longer.
func (runner *DaemonRunner) RedeliverFailedWebhooks() error {
	start := time.Now()
	defer func() {
		monitoring.WebhookRedeliveryDuration.Observe(time.Since(start).Minutes())
	}()

	deliveries, err := runner.deliveryRepository.FindRetryable(maxRedeliveryAttempts)
	if err != nil {
		return err
	}

	orgs := map[string]models.Org{}
	for _, delivery := range deliveries {
		integration, err := runner.integrationRepository.Read(delivery.WebhookID)
		if err != nil {
			slog.Error("could not load webhook integration", "err", err, "webhookId", delivery.WebhookID)
			continue
		}
		org, ok := orgs[integration.OrgID.String()]
		if !ok {
			org, err = runner.organizationRepository.GetOrgByID(integration.OrgID)
			if err != nil {
				slog.Error("could not load org for webhook", "err", err, "webhookId", delivery.WebhookID)
				continue
			}
			orgs[integration.OrgID.String()] = org
		}

		envelope := dtos.WebhookEnvelope{
			Organization: org.Slug,
			Event:        dtos.WebhookEventType(delivery.EventType),
			Payload:      map[string]any(delivery.Payload),
			Timestamp:    delivery.CreatedAt,
		}

		monitoring.WebhookRedeliveryAmount.Inc()
		runner.attemptRedelivery(integration, envelope, &delivery)
	}

	return nil
}

func (runner *DaemonRunner) attemptRedelivery(integration models.WebhookIntegration, envelope dtos.WebhookEnvelope, delivery *models.WebhookDelivery) {
	now := time.Now()
	delivery.Attempts++
	delivery.LastAttemptAt = &now

	resp, err := runner.dispatcher.Deliver(integration, envelope)
	if err != nil {
		delivery.StatusCode = 0
		delivery.ResponseBody = err.Error()
	} else {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		delivery.StatusCode = resp.StatusCode
		delivery.ResponseBody = string(body)
		delivery.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	}

	if err := runner.deliveryRepository.Save(nil, delivery); err != nil {
		slog.Error("could not save webhook delivery", "err", err)
	}
}

// NotifyFailingWebhooks creates a notification for every integration without
// a single successful delivery in the last 24 hours.
func (runner *DaemonRunner) NotifyFailingWebhooks() error {
	integrations, err := runner.deliveryRepository.FindFailingSince(time.Now().Add(-24 * time.Hour))
	if err != nil {
		return err
	}

	for _, integration := range integrations {
		if err := runner.notificationService.Notify(integration.OrgID, nil, dtos.NotificationWebhookFailing,
			"Webhook failing",
			fmt.Sprintf("Webhook %s had no successful delivery in the last 24 hours.", integration.Name)); err != nil {
			slog.Error("could not create webhook notification", "err", err)
		}
	}

	return nil
}
