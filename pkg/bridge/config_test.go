package bridge

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.True(t, cfg.Pointer.Enabled)
	assert.False(t, cfg.Gamepad.Enabled)
	assert.Equal(t, int32(20), cfg.AxisScale)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logLevel: debug
axisScale: 5
pollInterval: 10ms
gamepad:
  enabled: true
  name: Test Pad
  vendorId: 0x1209
  productId: 0x0002
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int32(5), cfg.AxisScale)
	assert.Equal(t, Duration(10*time.Millisecond), cfg.PollInterval)
	assert.True(t, cfg.Gamepad.Enabled)
	assert.Equal(t, "Test Pad", cfg.Gamepad.Name)
	assert.Equal(t, uint16(0x1209), cfg.Gamepad.VendorID)
	assert.Equal(t, uint16(0x0002), cfg.Gamepad.ProductID)

	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultConfig().Pointer, cfg.Pointer)
	assert.Equal(t, DefaultConfig().TakeTimeout, cfg.TakeTimeout)
}

func TestLoadConfigRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pollInterval: [nonsense"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestDurationAcceptsNanoseconds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("takeTimeout: 250000000"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Duration(250*time.Millisecond), cfg.TakeTimeout)
}
