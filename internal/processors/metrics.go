package processors

import (
	"crm-reporting/internal/shared/metrics"
)

const (
	originAutomated = "automated"
	originHuman     = "human"
)

var (
	// metricEventsFilteredTotal counts events seen by the filter, split by
	// whether a known human user produced them.
	metricEventsFilteredTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcess,
			Name:      "events_filtered_total",
		},
		[]string{"origin"},
	)
)
