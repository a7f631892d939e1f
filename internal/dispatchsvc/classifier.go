package dispatchsvc

import (
	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

// Kind tags the classification of one sample cycle. Exactly one kind is
// active per cycle.
type Kind uint8

const (
	// KindNone: the event field carries the no-change sentinel. Button
	// state is left untouched this cycle.
	KindNone Kind = iota
	// KindMotion: at least one scaled axis changed. Motion has strict
	// priority; the event field is ignored entirely for the cycle, since
	// the device cannot register a meaningful chord while being moved.
	KindMotion
	// KindHighLevel: a daemon-generated semantic event code.
	KindHighLevel
	// KindLowLevel: a bitmask of physical buttons.
	KindLowLevel
)

// Classified is the tagged result of classifying one sample.
type Classified struct {
	Kind    Kind
	Code    scontrol.EventCode
	Buttons scontrol.ButtonSet
}

// Classify decides what the current cycle represents. motion is the axis
// translator's verdict for the same cycle and wins over everything else.
func Classify(event int32, motion bool) Classified {
	switch {
	case motion:
		return Classified{Kind: KindMotion}
	case scontrol.IsHighLevel(event):
		return Classified{Kind: KindHighLevel, Code: scontrol.EventCode(event)}
	case scontrol.IsButtonMask(event):
		// The set may come out empty when only reserved firmware bits are
		// set; that still counts as a button cycle and releases any held
		// buttons, matching the daemon's exclusivity rules.
		return Classified{Kind: KindLowLevel, Buttons: scontrol.DecodeButtons(event)}
	default:
		return Classified{Kind: KindNone}
	}
}
