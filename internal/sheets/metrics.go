package sheets

import (
	"crm-reporting/internal/shared/metrics"
)

var (
	// metricRowsAppendedTotal counts report rows appended to the spreadsheet.
	metricRowsAppendedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "rows_appended_total",
		},
		[]string{},
	)
)
