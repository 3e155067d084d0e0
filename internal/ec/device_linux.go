//go:build linux && (amd64 || 386)

package ec

import (
	"syscall"

	"github.com/u-root/u-root/pkg/memio"
	"golang.org/x/sys/unix"
)

type rawPortDevice struct{}

// NewPortDevice requests raw I/O permission for both EC ports and returns a
// device backed by them. A denial for either port is unrecoverable and no
// hardware access may happen afterwards.
func NewPortDevice() (PortDevice, error) {
	if err := setPortIoPermission(DataPort); err != nil {
		return nil, err
	}
	if err := setPortIoPermission(CommandPort); err != nil {
		return nil, err
	}
	return &rawPortDevice{}, nil
}

// setPortIoPermission asks the kernel for byte-level access to a single port.
func setPortIoPermission(port uint16) error {
	if err := unix.Ioperm(int(port), 1, 1); err != nil {
		returnCode := -1
		if errno, ok := err.(syscall.Errno); ok {
			returnCode = -int(errno)
		}
		return &PermissionError{Port: port, ReturnCode: returnCode}
	}
	return nil
}

func (d *rawPortDevice) ReadStatus() (byte, error) {
	return inb(CommandPort)
}

func (d *rawPortDevice) ReadData() (byte, error) {
	return inb(DataPort)
}

func (d *rawPortDevice) WriteCommand(value byte) error {
	return outb(CommandPort, value)
}

func (d *rawPortDevice) WriteData(value byte) error {
	return outb(DataPort, value)
}

func inb(port uint16) (byte, error) {
	var data memio.Uint8
	if err := memio.In(port, &data); err != nil {
		return 0, err
	}
	return byte(data), nil
}

func outb(port uint16, value byte) error {
	data := memio.Uint8(value)
	return memio.Out(port, &data)
}
