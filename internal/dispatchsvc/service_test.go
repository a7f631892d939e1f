package dispatchsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lodriguez/SpaceBridge/pkg/mailbox"
	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

func TestServiceDisablesFailedProfile(t *testing.T) {
	broken := &recorderSink{writeErr: errors.New("device gone")}
	healthy := &recorderSink{}
	dispatchers := []*Dispatcher{
		NewDispatcher(zap.NewNop(), PointerProfile(), broken, 20),
		NewDispatcher(zap.NewNop(), GamepadProfile(), healthy, 20),
	}

	mb := mailbox.New[scontrol.Sample]()
	svc := New(zap.NewNop(), mb, dispatchers, WithTakeTimeout(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Start(ctx)
	}()

	mb.Publish(scontrol.Sample{X: 10, Event: -1})
	require.Eventually(t, func() bool {
		return len(healthy.recorded()) > 0
	}, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	assert.True(t, broken.isClosed(), "failed sink must be closed immediately")
	assert.Empty(t, broken.recorded())

	// Close releases only the surviving sinks.
	require.NoError(t, svc.Close())
	assert.True(t, healthy.isClosed())
}

func TestServiceStopsOnCancel(t *testing.T) {
	mb := mailbox.New[scontrol.Sample]()
	svc := New(zap.NewNop(), mb, nil, WithTakeTimeout(5*time.Millisecond))

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
		t.Fatal("dispatch loop did not stop")
	}
}
