package probes

import (
	"crm-reporting/internal/shared/metrics"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

var (
	// metricProbesTotal counts latency probe attempts by outcome.
	metricProbesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProbe,
			Name:      "probes_total",
		},
		[]string{"outcome"},
	)
)
