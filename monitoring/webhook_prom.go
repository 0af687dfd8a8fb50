// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var WebhookDeliveryAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "doracomply_webhook_delivery_amount",
	Help: "The total number of webhook delivery attempts",
})

var WebhookDeliveryFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "doracomply_webhook_delivery_failed_amount",
	Help: "The total number of failed webhook delivery attempts",
})

var WebhookDeliveryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "doracomply_webhook_delivery_duration_seconds",
	Help:    "Duration of webhook delivery attempts in seconds",
	Buckets: prometheus.DefBuckets,
})
