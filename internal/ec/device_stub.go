//go:build !linux || (!amd64 && !386)

package ec

import "errors"

// NewPortDevice is only available on x86 linux, where the EC is reachable
// through legacy I/O ports.
func NewPortDevice() (PortDevice, error) {
	return nil, errors.New("raw EC port access is only supported on x86 linux")
}
