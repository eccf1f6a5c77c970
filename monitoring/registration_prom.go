// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var BulkUploadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "kindworks_bulk_upload_duration_seconds",
	Help:    "Duration of bulk roster upload requests",
	Buckets: prometheus.DefBuckets,
})

var RosterRowsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "kindworks_roster_rows_processed_total",
	Help: "Processed roster rows by outcome",
}, []string{"outcome"})

var WebhookDeliveryFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "kindworks_webhook_delivery_failures_total",
	Help: "Failed partner webhook deliveries",
})

var InvitationBatchesSent = promauto.NewCounter(prometheus.CounterOpts{
	Name: "kindworks_invitation_batches_sent_total",
	Help: "Batched invitation mail dispatches",
})
