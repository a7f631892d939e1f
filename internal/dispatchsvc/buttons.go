package dispatchsvc

import (
	"go.uber.org/zap"

	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

// edgeTracker maintains one profile's press state and emits only
// transitions. Low-level buttons are tracked as a set, iterated in fixed
// table order. High-level events are tracked as a single active code --
// the daemon guarantees at most one at a time -- keyed by the numeric code,
// never by a derived name.
type edgeTracker struct {
	profile *Profile
	pressed map[scontrol.Button]bool
	active  scontrol.EventCode
}

func newEdgeTracker(p *Profile) *edgeTracker {
	return &edgeTracker{
		profile: p,
		pressed: make(map[scontrol.Button]bool, len(p.Buttons)),
	}
}

// apply emits the cycle's press/release edges. Motion and no-change cycles
// freeze button state entirely. A high-level cycle releases any held
// low-level buttons; a low-level cycle deactivates any high-level event.
// Releases always precede presses.
func (t *edgeTracker) apply(ev Classified, sink Sink, log *zap.Logger) error {
	switch ev.Kind {
	case KindMotion, KindNone:
		return nil
	case KindHighLevel:
		if err := t.setPressed(0, sink, log); err != nil {
			return err
		}
		return t.setActive(ev.Code, sink, log)
	case KindLowLevel:
		if err := t.setActive(0, sink, log); err != nil {
			return err
		}
		return t.setPressed(ev.Buttons, sink, log)
	}
	return nil
}

func (t *edgeTracker) setActive(code scontrol.EventCode, sink Sink, log *zap.Logger) error {
	if code == t.active {
		return nil
	}
	if t.active != 0 {
		if out, ok := t.profile.highCode(t.active); ok {
			if err := sink.WriteKey(out, 0); err != nil {
				return err
			}
			log.Info("High-level event released",
				zap.Stringer("event", t.active), zap.Uint16("code", out))
		}
	}
	if code != 0 {
		if out, ok := t.profile.highCode(code); ok {
			if err := sink.WriteKey(out, 1); err != nil {
				return err
			}
			log.Info("High-level event pressed",
				zap.Stringer("event", code), zap.Uint16("code", out))
		} else if !code.Known() {
			log.Debug("Unknown high-level event", zap.Int32("value", int32(code)))
		}
	}
	t.active = code
	return nil
}

func (t *edgeTracker) setPressed(want scontrol.ButtonSet, sink Sink, log *zap.Logger) error {
	for _, m := range t.profile.Buttons {
		pressed := want.Has(m.Button)
		if pressed == t.pressed[m.Button] {
			continue
		}
		var value int32
		if pressed {
			value = 1
		}
		if err := sink.WriteKey(m.Code, value); err != nil {
			return err
		}
		t.pressed[m.Button] = pressed
		if pressed {
			log.Info("Button pressed",
				zap.Stringer("button", m.Button), zap.Uint16("code", m.Code))
		} else {
			log.Info("Button released",
				zap.Stringer("button", m.Button), zap.Uint16("code", m.Code))
		}
	}
	return nil
}
