package scontrol

import "fmt"

// HighLevelThreshold separates the two encodings of the Sample event field.
// Values at or above it are symbolic high-level events generated by the
// daemon; positive values below it are bitmasks of physical buttons.
const HighLevelThreshold = 0x20000

// EventCode is a high-level semantic event generated by the daemon, for
// example a "view from front" cap gesture. At most one is active at a time.
type EventCode int32

const (
	EventBasicSettingsReq    EventCode = 0x20000
	EventAdvancedSettingsReq EventCode = 0x20001
	EventDevParsChanged      EventCode = 0x20002
	EventUnknownCommandByte  EventCode = 0x20003
	EventParamOutOfRange     EventCode = 0x20004
	EventParseError          EventCode = 0x20005
	EventInternalDeviceError EventCode = 0x20006
	EventWrongTransceiverID  EventCode = 0x20007
	EventBufferOverflow      EventCode = 0x20008
	EventFront               EventCode = 0x20009
	EventRight               EventCode = 0x2000A
	EventTop                 EventCode = 0x2000B
	EventFit                 EventCode = 0x2000C
	EventWheelLeft           EventCode = 0x2000D
	EventWheelRight          EventCode = 0x2000E
	EventHndlSensDlg         EventCode = 0x2000F
	EventHndlThreshDlg       EventCode = 0x20010
	EventHndlLcdDlg          EventCode = 0x20011
	EventHndlLedsDlg         EventCode = 0x20012
	EventApplInForeground    EventCode = 0x20013
	EventHndlKbdDlg          EventCode = 0x20014
	EventHndlWflDlg          EventCode = 0x20015
	EventBack                EventCode = 0x20016
	EventLeft                EventCode = 0x20017
	EventBottom              EventCode = 0x20018
	EventCtrl                EventCode = 0x20019
	EventApplFuncStart       EventCode = 0x20020
)

var eventNames = map[EventCode]string{
	EventBasicSettingsReq:    "DEV_BASIC_SETTINGS_REQ",
	EventAdvancedSettingsReq: "DEV_ADVANCED_SETTINGS_REQ",
	EventDevParsChanged:      "DEV_DEV_PARS_CHANGED",
	EventUnknownCommandByte:  "DEV_UNKNOWN_COMMAND_BYTE",
	EventParamOutOfRange:     "DEV_PARAM_OUT_OF_RANGE",
	EventParseError:          "DEV_PARSE_ERROR",
	EventInternalDeviceError: "DEV_INTERNAL_DEVICE_ERROR",
	EventWrongTransceiverID:  "DEV_WRONG_TRANSCEIVER_ID",
	EventBufferOverflow:      "DEV_BUFFER_OVERFLOW",
	EventFront:               "DEV_FRONT",
	EventRight:               "DEV_RIGHT",
	EventTop:                 "DEV_TOP",
	EventFit:                 "DEV_FIT",
	EventWheelLeft:           "DEV_WHEEL_LEFT",
	EventWheelRight:          "DEV_WHEEL_RIGHT",
	EventHndlSensDlg:         "EVT_HNDL_SENS_DLG",
	EventHndlThreshDlg:       "EVT_HNDL_THRESH_DLG",
	EventHndlLcdDlg:          "EVT_HNDL_LCD_DLG",
	EventHndlLedsDlg:         "EVT_HNDL_LEDS_DLG",
	EventApplInForeground:    "EVT_APPL_IN_FRGRND",
	EventHndlKbdDlg:          "EVT_HNDL_KBD_DLG",
	EventHndlWflDlg:          "EVT_HNDL_WFL_DLG",
	EventBack:                "DEV_BACK",
	EventLeft:                "DEV_LEFT",
	EventBottom:              "DEV_BOTTOM",
	EventCtrl:                "DEV_CTRL",
	EventApplFuncStart:       "APPL_FUNC_START",
}

func (e EventCode) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_EVENT_%#x", int32(e))
}

// Known reports whether the code is in the daemon's event table. Unknown
// codes above the threshold are forwarded as "no mapped button" so newer
// daemon firmware does not break the bridge.
func (e EventCode) Known() bool {
	_, ok := eventNames[e]
	return ok
}

// IsHighLevel reports whether a raw event field value encodes a high-level
// event rather than a button bitmask or a no-change sentinel.
func IsHighLevel(event int32) bool {
	return event >= HighLevelThreshold
}

// IsButtonMask reports whether a raw event field value encodes a bitmask of
// pressed physical buttons.
func IsButtonMask(event int32) bool {
	return event > 0 && event < HighLevelThreshold
}
