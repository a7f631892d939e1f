package scontrol

import "fmt"

// Status is the result code returned by every call into the vendor library.
type Status int32

const (
	StatusOK Status = iota
	StatusCommunicationError
	StatusWrongDeviceIndex
	StatusParameterOutOfRange
	StatusFileIOError
	StatusKeystrokeError
	StatusApplNotFound
	StatusRegistryError
	StatusNotSupported
	StatusExecCmdError
	StatusThreadError
	StatusWrongUser

	// StatusNothingChanged is returned by the daemon when a poll carries no
	// new data. It is a sentinel, not an error.
	StatusNothingChanged Status = -1
)

var statusNames = map[Status]string{
	StatusOK:                  "SC_OK",
	StatusCommunicationError:  "SC_COMMUNICATION_ERROR",
	StatusWrongDeviceIndex:    "SC_WRONG_DEVICE_INDEX",
	StatusParameterOutOfRange: "SC_PARAMETER_OUT_OF_RANGE",
	StatusFileIOError:         "SC_FILE_IO_ERROR",
	StatusKeystrokeError:      "SC_KEYSTROKE_ERROR",
	StatusApplNotFound:        "SC_APPL_NOT_FOUND",
	StatusRegistryError:       "SC_REGISTRY_ERROR",
	StatusNotSupported:        "SC_NOT_SUPPORTED",
	StatusExecCmdError:        "SC_EXEC_CMD_ERROR",
	StatusThreadError:         "SC_THREAD_ERROR",
	StatusWrongUser:           "SC_WRONG_USER",
	StatusNothingChanged:      "NOTHING_CHANGED",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SC_STATUS_%d", int32(s))
}

// IsNoChange reports whether a fetch result carries no new data. The daemon
// signals this with -1 and, in the fetch context only, with 1. The latter
// collides with SC_COMMUNICATION_ERROR but has meant "nothing changed" since
// the first daemon release.
func (s Status) IsNoChange() bool {
	return s == StatusNothingChanged || s == 1
}

// StatusError wraps a non-OK status returned by a vendor library call.
type StatusError struct {
	Op     string
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d (%s)", e.Op, int32(e.Status), e.Status)
}
