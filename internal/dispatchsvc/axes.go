package dispatchsvc

import (
	"github.com/lodriguez/SpaceBridge/internal/uinput"
	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

// axisCodes maps sample order (x, y, z, a, b, c) to evdev axis codes.
var axisCodes = [6]uint16{
	uinput.AbsX, uinput.AbsY, uinput.AbsZ,
	uinput.AbsRX, uinput.AbsRY, uinput.AbsRZ,
}

// axisTranslator scales raw axis readings and tracks the last value emitted
// per axis. Each dispatcher owns its own translator: the profiles scale
// identically but debounce independently.
type axisTranslator struct {
	scale int32
	last  [6]int32
}

func newAxisTranslator(scale int32) *axisTranslator {
	return &axisTranslator{scale: scale}
}

// translate writes every axis whose scaled value differs from the last
// emitted one and reports whether anything changed, together with the full
// scaled value set for diagnostics. State is updated even when a write
// fails, so a transient sink error does not replay old motion.
func (t *axisTranslator) translate(s scontrol.Sample, sink Sink) (values [6]int32, changed bool, err error) {
	raw := [6]int16{s.X, s.Y, s.Z, s.A, s.B, s.C}
	for i, r := range raw {
		v := int32(r) * t.scale
		values[i] = v
		if v != t.last[i] {
			changed = true
			if err == nil {
				err = sink.WriteAbs(axisCodes[i], v)
			}
		}
		t.last[i] = v
	}
	return values, changed, err
}
