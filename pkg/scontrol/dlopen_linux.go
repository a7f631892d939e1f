//go:build linux

package scontrol

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/ebitengine/purego"
)

// DefaultLibraryPath is where the vendor installer places the client library.
const DefaultLibraryPath = "/opt/SpaceControl/lib/libspc_ctrl.so"

// dlLink binds the vendor library at runtime. Loading at runtime rather than
// link time keeps a missing library a startup error instead of a build
// requirement; the library is proprietary and only present on hosts with the
// vendor driver installed.
type dlLink struct {
	path      string
	connected bool

	scConnect2     func(alwaysReceiving bool, applName unsafe.Pointer) int32
	scDisconnect   func() int32
	scGetDevNum    func(devNum, usedDevNum, maxDevIdx *int32) int32
	scFetchStdData func(devIdx int32,
		x, y, z, a, b, c *int16,
		traLmh, rotLmh, event *int32,
		tvSec, tvUsec *int64) int32
}

// Open loads the vendor client library and resolves its call surface. An
// empty path falls back to DefaultLibraryPath.
func Open(path string) (Link, error) {
	if path == "" {
		path = DefaultLibraryPath
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("vendor library not found at %s: %w", path, err)
	}
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor library %s: %w", path, err)
	}
	l := &dlLink{path: path}
	purego.RegisterLibFunc(&l.scConnect2, handle, "scConnect2")
	purego.RegisterLibFunc(&l.scDisconnect, handle, "scDisconnect")
	purego.RegisterLibFunc(&l.scGetDevNum, handle, "scGetDevNum")
	purego.RegisterLibFunc(&l.scFetchStdData, handle, "scFetchStdData")
	return l, nil
}

func (l *dlLink) Connect(alwaysReceiving bool, appName string) error {
	var name unsafe.Pointer
	if appName != "" {
		b := append([]byte(appName), 0)
		name = unsafe.Pointer(&b[0])
	}
	if st := Status(l.scConnect2(alwaysReceiving, name)); st != StatusOK {
		return &StatusError{Op: "scConnect2", Status: st}
	}
	l.connected = true
	return nil
}

func (l *dlLink) Disconnect() error {
	if !l.connected {
		return nil
	}
	l.connected = false
	if st := Status(l.scDisconnect()); st != StatusOK {
		return &StatusError{Op: "scDisconnect", Status: st}
	}
	return nil
}

func (l *dlLink) DeviceCount() (DeviceCount, error) {
	var total, used, maxIdx int32
	if st := Status(l.scGetDevNum(&total, &used, &maxIdx)); st != StatusOK {
		return DeviceCount{}, &StatusError{Op: "scGetDevNum", Status: st}
	}
	return DeviceCount{Total: int(total), Used: int(used), MaxIndex: int(maxIdx)}, nil
}

func (l *dlLink) Fetch(devIdx int) (Sample, Status) {
	var s Sample
	st := l.scFetchStdData(int32(devIdx),
		&s.X, &s.Y, &s.Z, &s.A, &s.B, &s.C,
		&s.TraLmh, &s.RotLmh, &s.Event,
		&s.Sec, &s.Usec)
	return s, Status(st)
}
