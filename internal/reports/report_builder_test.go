package reports_test

import (
	"context"
	"testing"
	"time"

	"crm-reporting/internal/models"
	"crm-reporting/internal/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportDate = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

func TestBuildRows_PeakOnFirstRowOnly(t *testing.T) {
	t.Parallel()

	builder := reports.NewReportBuilder()

	topEvents := []models.TopEvent{
		{Type: "incoming_chat_message", Count: 116},
		{Type: "outgoing_chat_message", Count: 114},
	}
	peak := &models.LatencySample{Timestamp: "2025-01-15T18:23:00Z", LatencyMS: 72}

	rows := builder.BuildRows(context.Background(), reportDate, topEvents, peak)

	require.Len(t, rows, 2)
	assert.Equal(t, []interface{}{"15.01.2025", "Incoming message", 116, int64(72), "18:23"}, rows[0])
	assert.Equal(t, []interface{}{"15.01.2025", "Outgoing message", 114, "", ""}, rows[1])
}

func TestBuildRows_NoPeak(t *testing.T) {
	t.Parallel()

	builder := reports.NewReportBuilder()

	rows := builder.BuildRows(context.Background(), reportDate, []models.TopEvent{
		{Type: "lead_added", Count: 3},
	}, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, []interface{}{"15.01.2025", "New lead", 3, "", ""}, rows[0])
}

func TestBuildRows_NoEventsPlaceholder(t *testing.T) {
	t.Parallel()

	builder := reports.NewReportBuilder()

	rows := builder.BuildRows(context.Background(), reportDate, nil, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, []interface{}{"15.01.2025", "No events", 0, "", ""}, rows[0])
}

func TestBuildRows_NoEventsButPeakExists(t *testing.T) {
	t.Parallel()

	builder := reports.NewReportBuilder()
	peak := &models.LatencySample{Timestamp: "2025-01-15T06:05:00Z", LatencyMS: 41}

	rows := builder.BuildRows(context.Background(), reportDate, nil, peak)

	require.Len(t, rows, 1)
	assert.Equal(t, []interface{}{"15.01.2025", "No events", 0, int64(41), "06:05"}, rows[0])
}

func TestBuildRows_UnknownTypePassesThrough(t *testing.T) {
	t.Parallel()

	builder := reports.NewReportBuilder()

	rows := builder.BuildRows(context.Background(), reportDate, []models.TopEvent{
		{Type: "some_future_event", Count: 9},
	}, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "some_future_event", rows[0][1])
}

func TestBuildRows_UnparseablePeakTimeFallsBack(t *testing.T) {
	t.Parallel()

	builder := reports.NewReportBuilder()
	peak := &models.LatencySample{Timestamp: "garbage", LatencyMS: 10}

	rows := builder.BuildRows(context.Background(), reportDate, []models.TopEvent{
		{Type: "lead_added", Count: 1},
	}, peak)

	require.Len(t, rows, 1)
	assert.Equal(t, "garbage", rows[0][4])
}

func TestEventLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "New lead", reports.EventLabel("lead_added"))
	assert.Equal(t, "Robot replied", reports.EventLabel("robot_replied"))
	assert.Equal(t, "unmapped_tag", reports.EventLabel("unmapped_tag"))
}

func TestHeaders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Date", "Event", "Count", "Peak latency (ms)", "Peak time"}, reports.Headers)
}
