package uinput

// Constants from the kernel's uinput.h and input-event-codes.h, limited to
// what a 6-axis controller bridge declares.

const (
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565
	uiSetAbsBit  = 0x40045567

	maxNameSize = 80
	absSize     = 64

	// BusUSB is the bus type reported for every virtual device.
	BusUSB = 0x03
)

const (
	evSyn = 0x00
	evKey = 0x01
	evAbs = 0x03

	synReport = 0
)

// Absolute axis codes. The six appear in sample order: translation X/Y/Z,
// then rotation RX/RY/RZ.
const (
	AbsX  uint16 = 0x00
	AbsY  uint16 = 0x01
	AbsZ  uint16 = 0x02
	AbsRX uint16 = 0x03
	AbsRY uint16 = 0x04
	AbsRZ uint16 = 0x05
)

// Key codes used by the two profiles.
const (
	BtnMisc uint16 = 0x100

	BtnLeft    uint16 = 0x110
	BtnRight   uint16 = 0x111
	BtnSide    uint16 = 0x113
	BtnExtra   uint16 = 0x114
	BtnForward uint16 = 0x115
	BtnBack    uint16 = 0x116
	BtnGearUp  uint16 = 0x151

	BtnA      uint16 = 0x130
	BtnB      uint16 = 0x131
	BtnX      uint16 = 0x133
	BtnY      uint16 = 0x134
	BtnTL     uint16 = 0x136
	BtnTR     uint16 = 0x137
	BtnTL2    uint16 = 0x138
	BtnTR2    uint16 = 0x139
	BtnSelect uint16 = 0x13a
	BtnStart  uint16 = 0x13b
	BtnThumbL uint16 = 0x13d
	BtnThumbR uint16 = 0x13e

	BtnDpadUp    uint16 = 0x220
	BtnDpadDown  uint16 = 0x221
	BtnDpadLeft  uint16 = 0x222
	BtnDpadRight uint16 = 0x223

	BtnTriggerHappy uint16 = 0x2c0
)

// inputID mirrors struct input_id.
type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// userDev mirrors struct uinput_user_dev.
type userDev struct {
	Name       [maxNameSize]byte
	ID         inputID
	EffectsMax uint32
	Absmax     [absSize]int32
	Absmin     [absSize]int32
	Absfuzz    [absSize]int32
	Absflat    [absSize]int32
}

// inputEvent mirrors struct input_event on 64-bit kernels.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}
