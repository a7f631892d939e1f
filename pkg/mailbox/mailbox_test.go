package mailbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestWins(t *testing.T) {
	mb := New[int]()
	mb.Publish(1)
	mb.Publish(2)
	mb.Publish(3)

	v, ok := mb.Take(10 * time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = mb.Take(10 * time.Millisecond)
	assert.False(t, ok, "slot must hold at most one value")
}

func TestTakeTimeout(t *testing.T) {
	mb := New[string]()
	start := time.Now()
	v, ok := mb.Take(20 * time.Millisecond)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestTakeWakesOnPublish(t *testing.T) {
	mb := New[int]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		mb.Publish(42)
	}()
	v, ok := mb.Take(time.Second)
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestPublishNeverBlocks(t *testing.T) {
	mb := New[int]()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			mb.Publish(i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked without a consumer")
	}
	v, ok := mb.Take(10 * time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, 999, v)
}
