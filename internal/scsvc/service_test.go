package scsvc

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lodriguez/SpaceBridge/pkg/mailbox"
	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

type fetchResult struct {
	sample scontrol.Sample
	status scontrol.Status
}

// scriptedLink replays a fixed fetch script, then reports "nothing
// changed" forever.
type scriptedLink struct {
	mu      sync.Mutex
	script  []fetchResult
	pos     int
	devIdxs []int
}

func (l *scriptedLink) Connect(alwaysReceiving bool, appName string) error { return nil }
func (l *scriptedLink) Disconnect() error                                  { return nil }
func (l *scriptedLink) DeviceCount() (scontrol.DeviceCount, error) {
	return scontrol.DeviceCount{Total: 1, Used: 1}, nil
}

func (l *scriptedLink) Fetch(devIdx int) (scontrol.Sample, scontrol.Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.devIdxs = append(l.devIdxs, devIdx)
	if l.pos >= len(l.script) {
		return scontrol.Sample{}, scontrol.StatusNothingChanged
	}
	r := l.script[l.pos]
	l.pos++
	return r.sample, r.status
}

func TestAcquisitionLoop(t *testing.T) {
	link := &scriptedLink{
		script: []fetchResult{
			{scontrol.Sample{X: 1, Event: -1}, scontrol.StatusOK},
			{scontrol.Sample{}, scontrol.StatusNothingChanged},
			{scontrol.Sample{}, scontrol.Status(1)},
			{scontrol.Sample{}, scontrol.StatusWrongDeviceIndex},
			{scontrol.Sample{X: 2, Event: -1}, scontrol.StatusOK},
		},
	}
	mb := mailbox.New[scontrol.Sample]()
	svc := New(zap.NewNop(), link, 3, mb, WithPollInterval(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		return svc.Stats().Published == 2
	}, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	stats := svc.Stats()
	assert.Equal(t, uint64(2), stats.Published)
	// Exactly one script entry is a real error; status 1 counts as a
	// no-change cycle in the fetch context, never as an error.
	assert.Equal(t, uint64(1), stats.Errors, "a failed fetch is recoverable, the loop keeps polling")
	assert.GreaterOrEqual(t, stats.NoChange, uint64(2))

	// Both samples went out before anyone consumed; only the latest
	// survives in the slot.
	sample, ok := mb.Take(10 * time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, int16(2), sample.X)

	link.mu.Lock()
	defer link.mu.Unlock()
	for _, idx := range link.devIdxs {
		assert.Equal(t, 3, idx, "loop must poll the configured device index")
	}
}

func TestAcquisitionStopsOnCancel(t *testing.T) {
	link := &scriptedLink{}
	mb := mailbox.New[scontrol.Sample]()
	svc := New(zap.NewNop(), link, 0, mb, WithPollInterval(50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Start(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("acquisition loop did not stop")
	}
}
