package tracking_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"yega/internal/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturePusher records pushed samples and can be told to fail.
type capturePusher struct {
	mu     sync.Mutex
	pushed []tracking.Sample
	err    error
}

func (p *capturePusher) Push(_ context.Context, sample tracking.Sample) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.pushed = append(p.pushed, sample)
	return nil
}

func (p *capturePusher) samples() []tracking.Sample {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]tracking.Sample(nil), p.pushed...)
}

func newTestReporter(t *testing.T, pusher tracking.LocationPusher) *tracking.Reporter {
	t.Helper()
	throttle, err := tracking.NewThrottle(tracking.DefaultConfig())
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return tracking.NewReporter(throttle, pusher, logger)
}

func TestReporter_PushesAcceptedSamples(t *testing.T) {
	pusher := &capturePusher{}
	reporter := newTestReporter(t, pusher)

	feed := make(chan tracking.Sample)
	done := make(chan error, 1)
	go func() {
		done <- reporter.Run(context.Background(), feed)
	}()

	feed <- sampleAt(t, 0, throttleEpoch)
	feed <- sampleAt(t, 1000, throttleEpoch.Add(time.Second)) // throttled
	feed <- sampleAt(t, 50, throttleEpoch.Add(4*time.Second))
	close(feed)

	require.NoError(t, <-done)
	assert.Len(t, pusher.samples(), 2)
}

func TestReporter_StopsOnContextCancel(t *testing.T) {
	pusher := &capturePusher{}
	reporter := newTestReporter(t, pusher)

	ctx, cancel := context.WithCancel(context.Background())
	feed := make(chan tracking.Sample)
	done := make(chan error, 1)
	go func() {
		done <- reporter.Run(ctx, feed)
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reporter did not stop on context cancellation")
	}
}

func TestReporter_PushFailure_DoesNotStopReporting(t *testing.T) {
	pusher := &capturePusher{err: errors.New("network down")}
	reporter := newTestReporter(t, pusher)

	feed := make(chan tracking.Sample)
	done := make(chan error, 1)
	go func() {
		done <- reporter.Run(context.Background(), feed)
	}()

	feed <- sampleAt(t, 0, throttleEpoch)

	// Recover the network; the next eligible sample goes through.
	pusher.mu.Lock()
	pusher.err = nil
	pusher.mu.Unlock()

	feed <- sampleAt(t, 50, throttleEpoch.Add(4*time.Second))
	close(feed)

	require.NoError(t, <-done)
	samples := pusher.samples()
	require.Len(t, samples, 1)
	// The failed push still advanced the baseline, so the delivered sample
	// is the later one.
	assert.Equal(t, throttleEpoch.Add(4*time.Second), samples[0].At)
}

func TestReporter_ResetsThrottleOnExit(t *testing.T) {
	pusher := &capturePusher{}
	throttle, err := tracking.NewThrottle(tracking.DefaultConfig())
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reporter := tracking.NewReporter(throttle, pusher, logger)

	feed := make(chan tracking.Sample, 1)
	feed <- sampleAt(t, 0, throttleEpoch)
	close(feed)
	require.NoError(t, reporter.Run(context.Background(), feed))

	// A fresh session starts from a clean baseline: a sample that the old
	// baseline would have throttled is accepted immediately.
	second := make(chan tracking.Sample, 1)
	second <- sampleAt(t, 0, throttleEpoch.Add(time.Second))
	close(second)
	require.NoError(t, reporter.Run(context.Background(), second))

	assert.Len(t, pusher.samples(), 2)
}
