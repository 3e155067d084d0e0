package ec

import "fmt"

// PermissionError is returned when the kernel refuses to grant raw I/O access
// to one of the EC ports. It carries the raw return code so the user can tell
// a missing capability apart from an invalid port range.
type PermissionError struct {
	Port       uint16
	ReturnCode int
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("failed to set I/O permission for port %#x, got return value %d", e.Port, e.ReturnCode)
}

// FlagTimeoutError is returned when a handshake flag did not reach the
// desired state within the wait budget. This means the EC is unresponsive or
// the port mapping is wrong, neither of which is recoverable.
type FlagTimeoutError struct {
	Flag Flag
	On   bool
}

func (e *FlagTimeoutError) Error() string {
	state := "off"
	if e.On {
		state = "on"
	}
	return fmt.Sprintf("timed out waiting for command flag %s to be %s", e.Flag, state)
}
