// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	databasetypes "github.com/doracomply/doracomply/database/types"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/monitoring"
	"github.com/doracomply/doracomply/shared"
)

// retry delays between delivery attempts of a single dispatch
var webhookRetryDelays = []time.Duration{1 * time.Second, 5 * time.Second, 10 * time.Second}

const maxResponseBodyBytes = 1 << 10

// WebhookSignature builds the X-Webhook-Signature header value:
// t=<unix>,v1=<hex hmac-sha256 of "<t>.<body>" keyed by the secret>.
func WebhookSignature(secret string, t time.Time, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", t.Unix())
	mac.Write(body)
	return fmt.Sprintf("t=%d,v1=%s", t.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

type WebhookDispatchService struct {
	integrationRepository shared.WebhookIntegrationRepository
	deliveryRepository    shared.WebhookDeliveryRepository
	httpClient            *http.Client
}

func NewWebhookDispatchService(integrationRepository shared.WebhookIntegrationRepository, deliveryRepository shared.WebhookDeliveryRepository) *WebhookDispatchService {
	return &WebhookDispatchService{
		integrationRepository: integrationRepository,
		deliveryRepository:    deliveryRepository,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Dispatch fans the event out to every enabled integration of the
// organization. Delivery happens in the background, the caller never waits.
func (s *WebhookDispatchService) Dispatch(org models.Org, eventType dtos.WebhookEventType, payload any) {
	integrations, err := s.integrationRepository.FindEnabledForEvent(org.ID, eventType)
	if err != nil {
		slog.Error("could not list webhook integrations", "org", org.Slug, "event", eventType, "err", err)
		return
	}

	envelope := dtos.WebhookEnvelope{
		Organization: org.Slug,
		Event:        eventType,
		Payload:      payload,
		Timestamp:    time.Now(),
	}

	for _, integration := range integrations {
		go s.deliverWithRetries(integration, envelope)
	}
}

// Deliver posts the envelope to a single integration, once.
func (s *WebhookDispatchService) Deliver(integration models.WebhookIntegration, envelope dtos.WebhookEnvelope) (*http.Response, error) {
	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, integration.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if integration.Secret != nil {
		req.Header.Set("X-Webhook-Signature", WebhookSignature(*integration.Secret, envelope.Timestamp, body))
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	monitoring.WebhookDeliveryDuration.Observe(time.Since(start).Seconds())
	monitoring.WebhookDeliveryAmount.Inc()
	if err != nil {
		monitoring.WebhookDeliveryFailedAmount.Inc()
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		monitoring.WebhookDeliveryFailedAmount.Inc()
	}
	return resp, nil
}

func (s *WebhookDispatchService) deliverWithRetries(integration models.WebhookIntegration, envelope dtos.WebhookEnvelope) {
	payload, err := databasetypes.JSONBFromStruct(envelope.Payload)
	if err != nil {
		slog.Error("could not marshal webhook payload", "webhook", integration.ID, "err", err)
		return
	}

	delivery := models.WebhookDelivery{
		WebhookID: integration.ID,
		EventType: string(envelope.Event),
		Payload:   payload,
	}

	for i, delay := range webhookRetryDelays {
		s.attempt(integration, envelope, &delivery)
		if delivery.Success || i == len(webhookRetryDelays)-1 {
			break
		}
		time.Sleep(delay)
	}

	if !delivery.Success {
		slog.Warn("webhook delivery failed", "webhook", integration.ID, "event", envelope.Event, "attempts", delivery.Attempts, "status", delivery.StatusCode)
	}
}

// attempt performs one POST and records the outcome on the delivery row.
func (s *WebhookDispatchService) attempt(integration models.WebhookIntegration, envelope dtos.WebhookEnvelope, delivery *models.WebhookDelivery) {
	now := time.Now()
	delivery.Attempts++
	delivery.LastAttemptAt = &now

	resp, err := s.Deliver(integration, envelope)
	if err != nil {
		delivery.StatusCode = 0
		delivery.ResponseBody = err.Error()
	} else {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
		delivery.StatusCode = resp.StatusCode
		delivery.ResponseBody = string(body)
		delivery.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	}

	if err := s.deliveryRepository.Save(nil, delivery); err != nil {
		slog.Error("could not record webhook delivery", "webhook", integration.ID, "err", err)
	}
}
