// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ContractStatusDaemonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "doracomply_daemon_contract_status_duration_minutes",
	Help:    "Duration of the contract status daemon in minutes",
	Buckets: prometheus.DefBuckets,
})

var ContractStatusDaemonAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "doracomply_daemon_contract_status_amount",
	Help: "The total number of contract status runs",
})

var WebhookRedeliveryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "doracomply_daemon_webhook_redelivery_duration_minutes",
	Help:    "Duration of webhook redelivery runs in minutes",
	Buckets: prometheus.DefBuckets,
})

var WebhookRedeliveryAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "doracomply_daemon_webhook_redelivery_amount",
	Help: "The total number of redelivered webhook events",
})

var StatisticsUpdateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "doracomply_daemon_statistics_update_duration_minutes",
	Help:    "Duration of risk statistics snapshots in minutes",
	Buckets: prometheus.DefBuckets,
})

var StatisticsUpdateDaemonAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "doracomply_daemon_statistics_update_amount",
	Help: "The total number of statistics snapshot operations",
})
