package reports

import (
	"context"
	"time"

	"crm-reporting/internal/models"
	"crm-reporting/internal/shared/loggers"
)

const (
	reportDateLayout = "02.01.2006"
	peakTimeLayout   = "15:04"

	noEventsLabel = "No events"
)

// Headers is the literal spreadsheet header row.
var Headers = []string{"Date", "Event", "Count", "Peak latency (ms)", "Peak time"}

//go:generate mockgen -source=report_builder.go -destination=./mocks/report_builder_mock.go -package=mocks
type ReportBuilder interface {
	// BuildRows shapes a day's top events and optional latency peak into
	// spreadsheet rows. The peak columns are populated on the first row only;
	// every other row carries blanks there. An empty top-event list yields a
	// single "No events" placeholder row.
	BuildRows(ctx context.Context, reportDate time.Time, topEvents []models.TopEvent, peak *models.LatencySample) [][]interface{}
}

type reportBuilder struct{}

func NewReportBuilder() ReportBuilder {
	return &reportBuilder{}
}

func (b *reportBuilder) BuildRows(ctx context.Context, reportDate time.Time, topEvents []models.TopEvent, peak *models.LatencySample) [][]interface{} {
	dateStr := reportDate.Format(reportDateLayout)

	if len(topEvents) == 0 {
		loggers.Ctx(ctx).Warn().Str(loggers.FieldReportDate, dateStr).Msg("no events for report")
		if peak != nil {
			return [][]interface{}{
				{dateStr, noEventsLabel, 0, peak.LatencyMS, b.formatPeakTime(ctx, peak.Timestamp)},
			}
		}
		return [][]interface{}{
			{dateStr, noEventsLabel, 0, "", ""},
		}
	}

	rows := make([][]interface{}, 0, len(topEvents))
	for i, entry := range topEvents {
		label := EventLabel(entry.Type)
		if i == 0 && peak != nil {
			rows = append(rows, []interface{}{dateStr, label, entry.Count, peak.LatencyMS, b.formatPeakTime(ctx, peak.Timestamp)})
		} else {
			rows = append(rows, []interface{}{dateStr, label, entry.Count, "", ""})
		}
	}

	loggers.Ctx(ctx).Info().
		Str(loggers.FieldReportDate, dateStr).
		Int("rows", len(rows)).
		Msg("report rows built")
	return rows
}

// formatPeakTime renders a stored UTC timestamp as HH:MM. An unparseable
// timestamp falls back to the raw string rather than failing the report.
func (b *reportBuilder) formatPeakTime(ctx context.Context, timestamp string) string {
	parsed, err := time.Parse(models.TimestampLayout, timestamp)
	if err != nil {
		loggers.Ctx(ctx).Error().Err(err).Str("timestamp", timestamp).Msg("failed to parse peak timestamp")
		return timestamp
	}
	return parsed.Format(peakTimeLayout)
}
