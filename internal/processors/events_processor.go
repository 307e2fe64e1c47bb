package processors

import (
	"context"
	"sort"

	"crm-reporting/internal/models"
	"crm-reporting/internal/shared/loggers"
)

// unknownEventType labels events the vendor returned without a type tag.
const unknownEventType = "unknown"

//go:generate mockgen -source=events_processor.go -destination=./mocks/events_processor_mock.go -package=mocks
type EventsProcessor interface {
	// FilterAutomated keeps only events not attributable to a known human
	// user, preserving input order.
	FilterAutomated(ctx context.Context, events []models.Event, userIDs []int64) []models.Event
	// CountByType counts events per type tag; untyped events count under "unknown".
	CountByType(events []models.Event) map[string]int
	// TopN ranks counts descending and truncates to limit. Ties break on the
	// type label ascending so output is deterministic.
	TopN(counts map[string]int, limit int) []models.TopEvent
	// Process runs the full filter, count and rank cycle.
	Process(ctx context.Context, events []models.Event, userIDs []int64) []models.TopEvent
}

type eventsProcessor struct {
	topLimit int
}

func NewEventsProcessor(topLimit int) EventsProcessor {
	return &eventsProcessor{topLimit: topLimit}
}

func (p *eventsProcessor) FilterAutomated(ctx context.Context, events []models.Event, userIDs []int64) []models.Event {
	userIDSet := make(map[int64]struct{}, len(userIDs))
	for _, id := range userIDs {
		userIDSet[id] = struct{}{}
	}

	automated := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.IsAutomated(userIDSet) {
			automated = append(automated, event)
		}
	}

	human := len(events) - len(automated)
	metricEventsFilteredTotal.WithLabelValues(originAutomated).Add(float64(len(automated)))
	metricEventsFilteredTotal.WithLabelValues(originHuman).Add(float64(human))
	loggers.Ctx(ctx).Info().
		Int("total_events", len(events)).
		Int("human_events", human).
		Int("automated_events", len(automated)).
		Msg("filtered automated events")

	return automated
}

func (p *eventsProcessor) CountByType(events []models.Event) map[string]int {
	counts := make(map[string]int)
	for _, event := range events {
		eventType := event.Type
		if eventType == "" {
			eventType = unknownEventType
		}
		counts[eventType]++
	}
	return counts
}

func (p *eventsProcessor) TopN(counts map[string]int, limit int) []models.TopEvent {
	ranked := make([]models.TopEvent, 0, len(counts))
	for eventType, count := range counts {
		ranked = append(ranked, models.TopEvent{Type: eventType, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Type < ranked[j].Type
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (p *eventsProcessor) Process(ctx context.Context, events []models.Event, userIDs []int64) []models.TopEvent {
	logger := loggers.Ctx(ctx)

	automated := p.FilterAutomated(ctx, events, userIDs)
	if len(automated) == 0 {
		logger.Warn().Msg("no automated events found")
		return nil
	}

	counts := p.CountByType(automated)
	logger.Info().Int("distinct_types", len(counts)).Msg("counted event types")

	topEvents := p.TopN(counts, p.topLimit)
	for i, entry := range topEvents {
		logger.Info().
			Int("rank", i+1).
			Str("event_type", entry.Type).
			Int("count", entry.Count).
			Msg("top event")
	}

	return topEvents
}
