package probes

import (
	"context"
	"time"

	"crm-reporting/internal/crm"
	"crm-reporting/internal/shared/loggers"
	"crm-reporting/internal/stores"
)

//go:generate mockgen -source=latency_prober.go -destination=./mocks/latency_prober_mock.go -package=mocks
type LatencyProber interface {
	// Measure times one reference request round-trip and returns the elapsed
	// wall-clock time rounded to whole milliseconds.
	Measure(ctx context.Context) (int64, error)
	// MeasureAndSave measures and persists the sample with the current UTC time.
	MeasureAndSave(ctx context.Context) (int64, error)
}

type latencyProber struct {
	client crm.Client
	store  stores.LatencyStore
	now    func() time.Time
}

func NewLatencyProber(client crm.Client, store stores.LatencyStore) LatencyProber {
	return &latencyProber{client: client, store: store, now: time.Now}
}

func (p *latencyProber) Measure(ctx context.Context) (int64, error) {
	start := time.Now()
	if err := p.client.GetAccount(ctx); err != nil {
		metricProbesTotal.WithLabelValues(outcomeError).Inc()
		return 0, err
	}
	latencyMS := time.Since(start).Round(time.Millisecond).Milliseconds()

	metricProbesTotal.WithLabelValues(outcomeSuccess).Inc()
	loggers.Ctx(ctx).Info().Int64("latency_ms", latencyMS).Msg("latency measured")
	return latencyMS, nil
}

func (p *latencyProber) MeasureAndSave(ctx context.Context) (int64, error) {
	latencyMS, err := p.Measure(ctx)
	if err != nil {
		return 0, err
	}
	if err := p.store.Save(ctx, latencyMS, p.now().UTC()); err != nil {
		return 0, err
	}
	return latencyMS, nil
}
