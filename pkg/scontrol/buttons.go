package scontrol

import "fmt"

// Button identifies a physical button by its bit position in the event
// field bitmask.
type Button uint8

const (
	Key1 Button = iota
	Key2
	Key3
	Key4
	Key5
	Key6
	KeyCtrl
	KeyAlt
	KeyShift
	KeyEsc
	KeyFront
	KeyRight
	KeyTop
	KeyFit
	Key2D3D
)

// Bits 15 (Panel) and 16 (Menu) drive fixed firmware functions and must not
// be remapped, so they are absent from the table and never decoded.
const (
	Key1B Button = iota + 17
	Key2B
	Key3B
	Key4B
	Key5B
	Key6B
	KeyCtrlB
	KeyAltB
	KeyShiftB
	KeyEscB
	KeyFrontB
	KeyRightB
	KeyTopB
	KeyFitB
	Key2D3DB
)

var buttonNames = map[Button]string{
	Key1:      "SC_KEY_1",
	Key2:      "SC_KEY_2",
	Key3:      "SC_KEY_3",
	Key4:      "SC_KEY_4",
	Key5:      "SC_KEY_5",
	Key6:      "SC_KEY_6",
	KeyCtrl:   "SC_KEY_CTRL",
	KeyAlt:    "SC_KEY_ALT",
	KeyShift:  "SC_KEY_SHIFT",
	KeyEsc:    "SC_KEY_ESC",
	KeyFront:  "SC_KEY_FRONT",
	KeyRight:  "SC_KEY_RIGHT",
	KeyTop:    "SC_KEY_TOP",
	KeyFit:    "SC_KEY_FIT",
	Key2D3D:   "SC_KEY_2D3D",
	Key1B:     "SC_KEY_1_B",
	Key2B:     "SC_KEY_2_B",
	Key3B:     "SC_KEY_3_B",
	Key4B:     "SC_KEY_4_B",
	Key5B:     "SC_KEY_5_B",
	Key6B:     "SC_KEY_6_B",
	KeyCtrlB:  "SC_KEY_CTRL_B",
	KeyAltB:   "SC_KEY_ALT_B",
	KeyShiftB: "SC_KEY_SHIFT_B",
	KeyEscB:   "SC_KEY_ESC_B",
	KeyFrontB: "SC_KEY_FRONT_B",
	KeyRightB: "SC_KEY_RIGHT_B",
	KeyTopB:   "SC_KEY_TOP_B",
	KeyFitB:   "SC_KEY_FIT_B",
	Key2D3DB:  "SC_KEY_2D3D_B",
}

func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("SC_BIT_%d", uint8(b))
}

// AllButtons lists every decodable button in fixed bit order. Edge trackers
// iterate this slice so press/release traces are reproducible.
var AllButtons = []Button{
	Key1, Key2, Key3, Key4, Key5, Key6,
	KeyCtrl, KeyAlt, KeyShift, KeyEsc,
	KeyFront, KeyRight, KeyTop, KeyFit, Key2D3D,
	Key1B, Key2B, Key3B, Key4B, Key5B, Key6B,
	KeyCtrlB, KeyAltB, KeyShiftB, KeyEscB,
	KeyFrontB, KeyRightB, KeyTopB, KeyFitB, Key2D3DB,
}

const decodableMask = 0x7FFF | (0x7FFF << 17)

// ButtonSet is a set of physical buttons, one bit per Button.
type ButtonSet uint32

// DecodeButtons extracts the decodable buttons from a raw event bitmask,
// dropping the two reserved firmware bits.
func DecodeButtons(event int32) ButtonSet {
	return ButtonSet(uint32(event) & decodableMask)
}

func (s ButtonSet) Has(b Button) bool {
	return s&(1<<uint32(b)) != 0
}

func (s ButtonSet) Empty() bool {
	return s == 0
}

// Buttons expands the set into fixed bit order.
func (s ButtonSet) Buttons() []Button {
	var out []Button
	for _, b := range AllButtons {
		if s.Has(b) {
			out = append(out, b)
		}
	}
	return out
}

func (s ButtonSet) String() string {
	buttons := s.Buttons()
	if len(buttons) == 0 {
		return "none"
	}
	str := ""
	for i, b := range buttons {
		if i > 0 {
			str += " + "
		}
		str += b.String()
	}
	return str
}
