package scontrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeButtons(t *testing.T) {
	set := DecodeButtons(1<<0 | 1<<5 | 1<<17)
	assert.True(t, set.Has(Key1))
	assert.True(t, set.Has(Key6))
	assert.True(t, set.Has(Key1B))
	assert.False(t, set.Has(Key2))
	assert.Equal(t, []Button{Key1, Key6, Key1B}, set.Buttons())
}

func TestDecodeButtonsDropsReservedBits(t *testing.T) {
	// Bits 15 and 16 select fixed firmware functions and must never reach
	// a virtual device.
	set := DecodeButtons(1<<15 | 1<<16)
	assert.True(t, set.Empty())

	set = DecodeButtons(1<<14 | 1<<15)
	assert.Equal(t, []Button{Key2D3D}, set.Buttons())
}

func TestButtonSetString(t *testing.T) {
	assert.Equal(t, "none", ButtonSet(0).String())
	assert.Equal(t, "SC_KEY_1 + SC_KEY_CTRL", DecodeButtons(1<<0|1<<6).String())
}

func TestEventFieldRanges(t *testing.T) {
	assert.False(t, IsHighLevel(0))
	assert.False(t, IsHighLevel(-1))
	assert.False(t, IsHighLevel(0x1FFFF))
	assert.True(t, IsHighLevel(0x20000))
	assert.True(t, IsHighLevel(0x20019))

	assert.False(t, IsButtonMask(0))
	assert.False(t, IsButtonMask(-1))
	assert.True(t, IsButtonMask(1))
	assert.True(t, IsButtonMask(0x1FFFF))
	assert.False(t, IsButtonMask(0x20000))
}

func TestEventCodeNames(t *testing.T) {
	assert.Equal(t, "DEV_FRONT", EventFront.String())
	assert.Equal(t, "DEV_WHEEL_LEFT", EventWheelLeft.String())
	assert.True(t, EventCtrl.Known())
	assert.False(t, EventCode(0x2F000).Known())
	assert.Equal(t, "UNKNOWN_EVENT_0x2f000", EventCode(0x2F000).String())
}

func TestStatusNoChange(t *testing.T) {
	assert.True(t, StatusNothingChanged.IsNoChange())
	// 1 doubles as "nothing changed" in the fetch context.
	assert.True(t, Status(1).IsNoChange())
	assert.False(t, StatusOK.IsNoChange())
	assert.False(t, StatusWrongDeviceIndex.IsNoChange())
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Op: "scConnect2", Status: StatusWrongUser}
	assert.Equal(t, "scConnect2 returned 11 (SC_WRONG_USER)", err.Error())
}

func TestDescribeEvent(t *testing.T) {
	tests := []struct {
		value    int32
		expected string
	}{
		{0, "NOTHING_CHANGED"},
		{-1, "NOTHING_CHANGED"},
		{0x20009, "DEV_FRONT"},
		{0x2000D, "DEV_WHEEL_LEFT"},
		{1 << 0, "Key event: SC_KEY_1"},
		{1<<0 | 1<<8, "Key event: SC_KEY_1 + SC_KEY_SHIFT"},
		{1<<15 | 1<<16, "Key event: none"},
		{-42, "Unknown event -42"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, DescribeEvent(test.value), "value %#x", test.value)
	}
}
