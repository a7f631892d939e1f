package scontrol

// Link is a connection to the SpaceControl daemon. The production
// implementation lives in dlopen_linux.go; tests substitute fakes.
//
// Fetch never fails at the call level: every outcome, including "nothing
// changed", is carried by the returned Status.
type Link interface {
	// Connect establishes the daemon session. An empty appName connects
	// anonymously (the daemon receives a NULL application name).
	Connect(alwaysReceiving bool, appName string) error
	Disconnect() error
	DeviceCount() (DeviceCount, error)
	Fetch(devIdx int) (Sample, Status)
}
