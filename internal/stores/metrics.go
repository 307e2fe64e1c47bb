package stores

import (
	"crm-reporting/internal/shared/metrics"
)

var (
	// metricSamplesSavedTotal counts latency samples persisted by the probe.
	metricSamplesSavedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStore,
			Name:      "samples_saved_total",
		},
		[]string{},
	)

	// metricSamplesDeletedTotal counts samples removed after reporting.
	metricSamplesDeletedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStore,
			Name:      "samples_deleted_total",
		},
		[]string{},
	)
)
