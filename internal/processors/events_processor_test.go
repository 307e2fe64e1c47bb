package processors_test

import (
	"context"
	"testing"

	"crm-reporting/internal/models"
	"crm-reporting/internal/processors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func TestFilterAutomated_KeepsSystemAndUnknownActors(t *testing.T) {
	t.Parallel()

	processor := processors.NewEventsProcessor(5)

	events := []models.Event{
		{Type: "lead_added", CreatedBy: ptr(101)},  // known human
		{Type: "robot_replied", CreatedBy: nil},    // system
		{Type: "task_completed", CreatedBy: ptr(999)}, // unknown actor (integration)
		{Type: "lead_added", CreatedBy: ptr(102)},  // known human
		{Type: "incoming_call", CreatedBy: ptr(0)}, // system pseudo-user
	}

	automated := processor.FilterAutomated(context.Background(), events, []int64{101, 102})

	require.Len(t, automated, 3)
	assert.Equal(t, "robot_replied", automated[0].Type)
	assert.Equal(t, "task_completed", automated[1].Type)
	assert.Equal(t, "incoming_call", automated[2].Type)
}

func TestFilterAutomated_PreservesOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	processor := processors.NewEventsProcessor(5)

	events := []models.Event{
		{Type: "a"},
		{Type: "a"},
		{Type: "b"},
	}

	automated := processor.FilterAutomated(context.Background(), events, nil)
	assert.Equal(t, events, automated, "with no known users every event is automated, in order")
}

func TestFilterAutomated_EmptyInput(t *testing.T) {
	t.Parallel()

	processor := processors.NewEventsProcessor(5)
	automated := processor.FilterAutomated(context.Background(), nil, []int64{1})
	assert.Empty(t, automated)
}

func TestCountByType_TotalsMatchInput(t *testing.T) {
	t.Parallel()

	processor := processors.NewEventsProcessor(5)

	events := []models.Event{
		{Type: "lead_added"},
		{Type: "lead_added"},
		{Type: "task_completed"},
		{Type: ""}, // missing type counts under "unknown"
		{Type: "lead_added"},
	}

	counts := processor.CountByType(events)

	total := 0
	for _, count := range counts {
		total += count
	}
	assert.Equal(t, len(events), total, "every event counted exactly once")
	assert.Equal(t, 3, counts["lead_added"])
	assert.Equal(t, 1, counts["task_completed"])
	assert.Equal(t, 1, counts["unknown"])
}

func TestTopN_RanksAndTruncates(t *testing.T) {
	t.Parallel()

	processor := processors.NewEventsProcessor(5)

	counts := map[string]int{
		"incoming_chat_message": 116,
		"outgoing_chat_message": 114,
		"lead_status_changed":   90,
		"task_added":            40,
		"lead_added":            12,
		"common_note_added":     3,
	}

	top := processor.TopN(counts, 3)
	assert.Equal(t, []models.TopEvent{
		{Type: "incoming_chat_message", Count: 116},
		{Type: "outgoing_chat_message", Count: 114},
		{Type: "lead_status_changed", Count: 90},
	}, top)
}

func TestTopN_FewerTypesThanLimit(t *testing.T) {
	t.Parallel()

	processor := processors.NewEventsProcessor(5)

	top := processor.TopN(map[string]int{"lead_added": 2}, 5)
	assert.Equal(t, []models.TopEvent{{Type: "lead_added", Count: 2}}, top, "never padded")
}

func TestTopN_TieBreaksOnTypeAscending(t *testing.T) {
	t.Parallel()

	processor := processors.NewEventsProcessor(5)

	counts := map[string]int{
		"zeta":  10,
		"alpha": 10,
		"mid":   10,
		"top":   20,
	}

	top := processor.TopN(counts, 4)
	assert.Equal(t, []models.TopEvent{
		{Type: "top", Count: 20},
		{Type: "alpha", Count: 10},
		{Type: "mid", Count: 10},
		{Type: "zeta", Count: 10},
	}, top)
}

func TestTopN_EmptyCounts(t *testing.T) {
	t.Parallel()

	processor := processors.NewEventsProcessor(5)
	assert.Empty(t, processor.TopN(map[string]int{}, 5))
}

func TestProcess_FullCycle(t *testing.T) {
	t.Parallel()

	processor := processors.NewEventsProcessor(2)

	events := []models.Event{
		{Type: "lead_added", CreatedBy: ptr(101)}, // human, dropped
		{Type: "robot_replied"},
		{Type: "robot_replied"},
		{Type: "robot_replied"},
		{Type: "incoming_chat_message"},
		{Type: "incoming_chat_message"},
		{Type: "task_completed", CreatedBy: ptr(999)},
	}

	top := processor.Process(context.Background(), events, []int64{101})
	assert.Equal(t, []models.TopEvent{
		{Type: "robot_replied", Count: 3},
		{Type: "incoming_chat_message", Count: 2},
	}, top)
}

func TestProcess_NoAutomatedEvents(t *testing.T) {
	t.Parallel()

	processor := processors.NewEventsProcessor(5)

	events := []models.Event{
		{Type: "lead_added", CreatedBy: ptr(101)},
		{Type: "task_added", CreatedBy: ptr(102)},
	}

	top := processor.Process(context.Background(), events, []int64{101, 102})
	assert.Empty(t, top)
}
