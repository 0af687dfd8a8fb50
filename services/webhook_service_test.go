// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
)

func TestWebhookSignature(t *testing.T) {
	secret := "whsec_test"
	at := time.Unix(1756080000, 0)
	body := []byte(`{"event":"webhook.test"}`)

	sig := WebhookSignature(secret, at, body)

	parts := strings.SplitN(sig, ",", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "t=1756080000", parts[0])
	require.True(t, strings.HasPrefix(parts[1], "v1="))

	// recompute over "<t>.<body>"
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", at.Unix())
	mac.Write(body)
	assert.Equal(t, "v1="+hex.EncodeToString(mac.Sum(nil)), parts[1])
}

func TestWebhookSignatureChangesWithBody(t *testing.T) {
	at := time.Unix(1756080000, 0)
	sigA := WebhookSignature("secret", at, []byte("a"))
	sigB := WebhookSignature("secret", at, []byte("b"))
	assert.NotEqual(t, sigA, sigB)
}

func TestDeliver(t *testing.T) {
	t.Run("posts the envelope with a valid signature", func(t *testing.T) {
		secret := "whsec_test"
		var receivedSig string
		var receivedBody []byte

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedSig = r.Header.Get("X-Webhook-Signature")
			receivedBody, _ = io.ReadAll(r.Body)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(200)
		}))
		defer srv.Close()

		service := NewWebhookDispatchService(nil, nil)
		integration := models.WebhookIntegration{
			URL:    srv.URL,
			Secret: shared.Ptr(secret),
		}
		envelope := dtos.WebhookEnvelope{
			Organization: "acme-bank",
			Event:        dtos.EventWebhookTest,
			Payload:      map[string]any{"hello": "world"},
			Timestamp:    time.Unix(1756080000, 0),
		}

		resp, err := service.Deliver(integration, envelope)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, 200, resp.StatusCode)

		var decoded dtos.WebhookEnvelope
		require.NoError(t, json.Unmarshal(receivedBody, &decoded))
		assert.Equal(t, "acme-bank", decoded.Organization)
		assert.Equal(t, dtos.EventWebhookTest, decoded.Event)

		// the receiver verifies the signature over the exact bytes it got
		expected := WebhookSignature(secret, envelope.Timestamp, receivedBody)
		assert.Equal(t, expected, receivedSig)
	})

	t.Run("omits the signature header without a secret", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("X-Webhook-Signature"))
			w.WriteHeader(200)
		}))
		defer srv.Close()

		service := NewWebhookDispatchService(nil, nil)
		resp, err := service.Deliver(models.WebhookIntegration{URL: srv.URL}, dtos.WebhookEnvelope{
			Event:     dtos.EventWebhookTest,
			Timestamp: time.Now(),
		})
		require.NoError(t, err)
		resp.Body.Close()
	})
}
