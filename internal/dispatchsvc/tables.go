package dispatchsvc

import (
	"github.com/lodriguez/SpaceBridge/internal/uinput"
	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

// The two profile descriptors. Built once, never mutated. Several
// high-level assignments on the pointer profile collide numerically
// (DEV_BACK lands on BTN_EXTRA like DEV_RIGHT); high-level events are
// mutually exclusive by construction, and the historical code values are
// what existing spacenavd setups expect.

// PointerProfile is the spacenavd-compatible 6-axis pointing device.
func PointerProfile() *Profile {
	return &Profile{
		Name:       "pointer",
		AxisLabels: [6]string{"x", "y", "z", "rx", "ry", "rz"},
		Buttons: []ButtonMapping{
			{scontrol.Key1, uinput.BtnMisc + 0},
			{scontrol.Key2, uinput.BtnMisc + 1},
			{scontrol.Key3, uinput.BtnMisc + 2},
			{scontrol.Key4, uinput.BtnMisc + 3},
			{scontrol.Key5, uinput.BtnMisc + 4},
			{scontrol.Key6, uinput.BtnMisc + 5},
			{scontrol.KeyCtrl, uinput.BtnMisc + 6},
			{scontrol.KeyAlt, uinput.BtnMisc + 7},
			{scontrol.KeyShift, uinput.BtnMisc + 8},
			{scontrol.KeyEsc, uinput.BtnMisc + 9},
			{scontrol.KeyFront, uinput.BtnMisc + 10},
			{scontrol.KeyRight, uinput.BtnMisc + 11},
			{scontrol.KeyTop, uinput.BtnMisc + 12},
			{scontrol.KeyFit, uinput.BtnMisc + 13},
			{scontrol.Key2D3D, uinput.BtnMisc + 14},
			{scontrol.Key1B, uinput.BtnMisc + 17},
			{scontrol.Key2B, uinput.BtnMisc + 18},
			{scontrol.Key3B, uinput.BtnMisc + 19},
			{scontrol.Key4B, uinput.BtnMisc + 20},
			{scontrol.Key5B, uinput.BtnMisc + 21},
			{scontrol.Key6B, uinput.BtnMisc + 22},
			{scontrol.KeyCtrlB, uinput.BtnMisc + 23},
			{scontrol.KeyAltB, uinput.BtnMisc + 24},
			{scontrol.KeyShiftB, uinput.BtnMisc + 25},
			{scontrol.KeyEscB, uinput.BtnMisc + 26},
			{scontrol.KeyFrontB, uinput.BtnMisc + 27},
			{scontrol.KeyRightB, uinput.BtnMisc + 28},
			{scontrol.KeyTopB, uinput.BtnMisc + 29},
			{scontrol.KeyFitB, uinput.BtnMisc + 30},
			{scontrol.Key2D3DB, uinput.BtnMisc + 31},
		},
		HighLevel: []EventMapping{
			{scontrol.EventFront, uinput.BtnSide},
			{scontrol.EventRight, uinput.BtnExtra},
			{scontrol.EventTop, uinput.BtnForward},
			{scontrol.EventFit, uinput.BtnGearUp},
			{scontrol.EventBack, uinput.BtnSide + 1},
			{scontrol.EventLeft, uinput.BtnExtra + 1},
			{scontrol.EventBottom, uinput.BtnForward + 1},
			{scontrol.EventWheelLeft, uinput.BtnLeft},
			{scontrol.EventWheelRight, uinput.BtnRight},
			{scontrol.EventHndlSensDlg, uinput.BtnMisc + 34},
			{scontrol.EventHndlThreshDlg, uinput.BtnMisc + 35},
			{scontrol.EventHndlLcdDlg, uinput.BtnMisc + 36},
			{scontrol.EventHndlLedsDlg, uinput.BtnMisc + 37},
			{scontrol.EventApplInForeground, uinput.BtnMisc + 38},
			{scontrol.EventHndlKbdDlg, uinput.BtnMisc + 39},
			{scontrol.EventHndlWflDlg, uinput.BtnMisc + 40},
			{scontrol.EventCtrl, uinput.BtnMisc + 41},
		},
	}
}

// GamepadProfile maps the controller onto a generic gamepad: face buttons,
// shoulders, d-pad, and the trigger-happy block for everything that has no
// conventional slot.
func GamepadProfile() *Profile {
	return &Profile{
		Name:       "gamepad",
		AxisLabels: [6]string{"xTrans", "yTrans", "zTrans", "roll", "pitch", "yaw"},
		Buttons: []ButtonMapping{
			{scontrol.Key1, uinput.BtnA},
			{scontrol.Key2, uinput.BtnB},
			{scontrol.Key3, uinput.BtnX},
			{scontrol.Key4, uinput.BtnY},
			{scontrol.Key5, uinput.BtnTL},
			{scontrol.Key6, uinput.BtnTR},
			{scontrol.KeyCtrl, uinput.BtnSelect},
			{scontrol.KeyAlt, uinput.BtnStart},
			{scontrol.KeyShift, uinput.BtnThumbL},
			{scontrol.KeyEsc, uinput.BtnThumbR},
			{scontrol.KeyFront, uinput.BtnDpadUp},
			{scontrol.KeyRight, uinput.BtnDpadRight},
			{scontrol.KeyTop, uinput.BtnDpadDown},
			{scontrol.KeyFit, uinput.BtnDpadLeft},
			{scontrol.Key2D3D, uinput.BtnTriggerHappy + 0},
			{scontrol.Key1B, uinput.BtnTriggerHappy + 3},
			{scontrol.Key2B, uinput.BtnTriggerHappy + 4},
			{scontrol.Key3B, uinput.BtnTriggerHappy + 5},
			{scontrol.Key4B, uinput.BtnTriggerHappy + 6},
			{scontrol.Key5B, uinput.BtnTriggerHappy + 7},
			{scontrol.Key6B, uinput.BtnTriggerHappy + 8},
			{scontrol.KeyCtrlB, uinput.BtnTriggerHappy + 9},
			{scontrol.KeyAltB, uinput.BtnTriggerHappy + 10},
			{scontrol.KeyShiftB, uinput.BtnTriggerHappy + 11},
			{scontrol.KeyEscB, uinput.BtnTriggerHappy + 12},
			{scontrol.KeyFrontB, uinput.BtnTriggerHappy + 13},
			{scontrol.KeyRightB, uinput.BtnTriggerHappy + 14},
			{scontrol.KeyTopB, uinput.BtnTriggerHappy + 15},
			{scontrol.KeyFitB, uinput.BtnTriggerHappy + 16},
			{scontrol.Key2D3DB, uinput.BtnTriggerHappy + 17},
		},
		HighLevel: []EventMapping{
			{scontrol.EventWheelLeft, uinput.BtnTL2},
			{scontrol.EventWheelRight, uinput.BtnTR2},
			{scontrol.EventHndlSensDlg, uinput.BtnTriggerHappy + 18},
			{scontrol.EventHndlThreshDlg, uinput.BtnTriggerHappy + 19},
			{scontrol.EventHndlLcdDlg, uinput.BtnTriggerHappy + 20},
			{scontrol.EventHndlLedsDlg, uinput.BtnTriggerHappy + 21},
			{scontrol.EventApplInForeground, uinput.BtnTriggerHappy + 22},
			{scontrol.EventHndlKbdDlg, uinput.BtnTriggerHappy + 23},
			{scontrol.EventHndlWflDlg, uinput.BtnTriggerHappy + 24},
			{scontrol.EventCtrl, uinput.BtnTriggerHappy + 25},
		},
	}
}
