package crm

import (
	"crm-reporting/internal/shared/metrics"
)

const (
	outcomeSuccess        = "success"
	outcomeTransientError = "transient_error"
	outcomePermanentError = "permanent_error"
)

var (
	// metricRequestsTotal counts individual CRM request attempts by endpoint
	// and outcome. Retried attempts count separately.
	metricRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCRM,
			Name:      "requests_total",
		},
		[]string{"endpoint", "outcome"},
	)

	// metricRetriesTotal counts retries scheduled by the retry policy.
	metricRetriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCRM,
			Name:      "retries_total",
		},
		[]string{"endpoint"},
	)

	// metricEventPagesTotal counts event pages fetched per run.
	metricEventPagesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCRM,
			Name:      "event_pages_total",
		},
		[]string{"endpoint"},
	)
)
