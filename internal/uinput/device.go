// Package uinput creates virtual evdev devices through /dev/uinput and
// writes absolute-axis and key events to them.
package uinput

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DefaultPath is the kernel's uinput character device.
const DefaultPath = "/dev/uinput"

// Axis range declared for all six absolute axes.
const (
	AxisMin = -32767
	AxisMax = 32767
)

// DeviceConfig declares the identity and capabilities of one virtual
// device. All devices carry the six absolute axes; the key set varies per
// profile. Duplicate key codes are tolerated and declared once.
type DeviceConfig struct {
	Name    string
	Vendor  uint16
	Product uint16
	Keys    []uint16
}

// Device is a created uinput device node.
type Device struct {
	name string
	file *os.File
}

// Create declares capabilities on path (usually DefaultPath) and brings the
// virtual device up. The caller must Close it to remove the node.
func Create(path string, cfg DeviceConfig) (*Device, error) {
	if path == "" {
		path = DefaultPath
	}
	file, err := os.OpenFile(path, unix.O_WRONLY|unix.O_NONBLOCK, 0660)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s (is the uinput module loaded and are you in the input group?): %w", path, err)
	}

	if err := setupDevice(file, cfg); err != nil {
		_ = file.Close()
		return nil, err
	}

	return &Device{name: cfg.Name, file: file}, nil
}

func setupDevice(file *os.File, cfg DeviceConfig) error {
	if err := ioctl(file, uiSetEvBit, evKey); err != nil {
		return fmt.Errorf("failed to enable key events: %w", err)
	}
	declared := make(map[uint16]struct{}, len(cfg.Keys))
	for _, code := range cfg.Keys {
		if _, ok := declared[code]; ok {
			continue
		}
		declared[code] = struct{}{}
		if err := ioctl(file, uiSetKeyBit, uintptr(code)); err != nil {
			return fmt.Errorf("failed to declare key %#x: %w", code, err)
		}
	}

	if err := ioctl(file, uiSetEvBit, evAbs); err != nil {
		return fmt.Errorf("failed to enable absolute axis events: %w", err)
	}
	dev := userDev{
		ID: inputID{
			Bustype: BusUSB,
			Vendor:  cfg.Vendor,
			Product: cfg.Product,
			Version: 1,
		},
	}
	copy(dev.Name[:], cfg.Name)
	for _, axis := range []uint16{AbsX, AbsY, AbsZ, AbsRX, AbsRY, AbsRZ} {
		if err := ioctl(file, uiSetAbsBit, uintptr(axis)); err != nil {
			return fmt.Errorf("failed to declare axis %#x: %w", axis, err)
		}
		dev.Absmin[axis] = AxisMin
		dev.Absmax[axis] = AxisMax
	}

	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, dev); err != nil {
		return fmt.Errorf("failed to encode device setup: %w", err)
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write device setup: %w", err)
	}
	if err := ioctl(file, uiDevCreate, 0); err != nil {
		return fmt.Errorf("failed to create device node: %w", err)
	}
	return nil
}

// Name returns the declared device name.
func (d *Device) Name() string {
	return d.name
}

// WriteAbs emits one absolute axis value. The event reaches consumers on
// the next Sync.
func (d *Device) WriteAbs(code uint16, value int32) error {
	return d.writeEvent(evAbs, code, value)
}

// WriteKey emits one key state, 1 pressed or 0 released.
func (d *Device) WriteKey(code uint16, value int32) error {
	return d.writeEvent(evKey, code, value)
}

// Sync marks everything written since the previous Sync as one coherent
// input report.
func (d *Device) Sync() error {
	return d.writeEvent(evSyn, synReport, 0)
}

func (d *Device) writeEvent(typ, code uint16, value int32) error {
	ev := inputEvent{Type: typ, Code: code, Value: value}
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, ev); err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if _, err := d.file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write event to %s: %w", d.name, err)
	}
	return nil
}

// Close destroys the device node and releases the file descriptor.
func (d *Device) Close() error {
	_ = ioctl(d.file, uiDevDestroy, 0)
	if err := d.file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", d.name, err)
	}
	return nil
}

func ioctl(file *os.File, cmd, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, file.Fd(), cmd, arg)
	if errno != 0 {
		return errno
	}
	return nil
}
