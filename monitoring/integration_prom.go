// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GleifLookupAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "doracomply_gleif_lookup_amount",
	Help: "The total number of GLEIF LEI lookups",
})

var GleifLookupFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "doracomply_gleif_lookup_failed_amount",
	Help: "The total number of failed GLEIF LEI lookups",
})

var DocumentParseAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "doracomply_document_parse_amount",
	Help: "The total number of document extraction jobs",
})

var DocumentParseFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "doracomply_document_parse_failed_amount",
	Help: "The total number of failed document extraction jobs",
})

var DocumentParseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "doracomply_document_parse_duration_seconds",
	Help:    "Duration of document extraction jobs in seconds",
	Buckets: prometheus.DefBuckets,
})
