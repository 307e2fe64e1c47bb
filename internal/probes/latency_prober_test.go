package probes_test

import (
	"context"
	"errors"
	"testing"
	"time"

	crmmocks "crm-reporting/internal/crm/mocks"
	"crm-reporting/internal/probes"
	storemocks "crm-reporting/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMeasure_ReturnsElapsedMilliseconds(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := crmmocks.NewMockClient(ctrl)
	store := storemocks.NewMockLatencyStore(ctrl)

	client.EXPECT().GetAccount(gomock.Any()).DoAndReturn(func(context.Context) error {
		time.Sleep(5 * time.Millisecond)
		return nil
	})

	prober := probes.NewLatencyProber(client, store)
	latencyMS, err := prober.Measure(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, latencyMS, int64(5))
}

func TestMeasure_ProbeFailurePropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := crmmocks.NewMockClient(ctrl)
	store := storemocks.NewMockLatencyStore(ctrl)

	probeErr := errors.New("account fetch failed")
	client.EXPECT().GetAccount(gomock.Any()).Return(probeErr)

	prober := probes.NewLatencyProber(client, store)
	_, err := prober.Measure(context.Background())
	assert.ErrorIs(t, err, probeErr)
}

func TestMeasureAndSave_PersistsSample(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := crmmocks.NewMockClient(ctrl)
	store := storemocks.NewMockLatencyStore(ctrl)

	client.EXPECT().GetAccount(gomock.Any()).Return(nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, latencyMS int64, timestamp time.Time) error {
			assert.GreaterOrEqual(t, latencyMS, int64(0))
			assert.WithinDuration(t, time.Now().UTC(), timestamp, time.Minute)
			return nil
		})

	prober := probes.NewLatencyProber(client, store)
	_, err := prober.MeasureAndSave(context.Background())
	require.NoError(t, err)
}

func TestMeasureAndSave_SaveFailurePropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := crmmocks.NewMockClient(ctrl)
	store := storemocks.NewMockLatencyStore(ctrl)

	client.EXPECT().GetAccount(gomock.Any()).Return(nil)
	saveErr := errors.New("disk full")
	store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(saveErr)

	prober := probes.NewLatencyProber(client, store)
	_, err := prober.MeasureAndSave(context.Background())
	assert.ErrorIs(t, err, saveErr)
}
