// Package scontrol is the call surface of the SpaceControl vendor daemon:
// the polled sample record, the status and event code tables, and a runtime
// binding to the client library the daemon ships.
package scontrol

import "fmt"

// Sample is one poll result. X/Y/Z are translation axes, A/B/C rotation
// axes. TraLmh and RotLmh are limit-hit flags forwarded as-is. Event is
// dual-purpose: a button bitmask in (0, 0x20000), a high-level EventCode at
// or above 0x20000, or 0/-1 for "no change" -- never more than one of those
// readings per sample. Sec/Usec are the daemon's timestamp, diagnostics only.
type Sample struct {
	X, Y, Z int16
	A, B, C int16

	TraLmh int32
	RotLmh int32

	Event int32

	Sec  int64
	Usec int64
}

// DeviceCount is the daemon's device census.
type DeviceCount struct {
	Total    int `json:"total"`
	Used     int `json:"used"`
	MaxIndex int `json:"maxIndex"`
}

// DescribeEvent renders a raw event field value for log lines and the
// decode-event command.
func DescribeEvent(v int32) string {
	switch {
	case v == 0 || v == -1:
		return StatusNothingChanged.String()
	case IsHighLevel(v):
		return EventCode(v).String()
	case IsButtonMask(v):
		return "Key event: " + DecodeButtons(v).String()
	default:
		return fmt.Sprintf("Unknown event %d", v)
	}
}
