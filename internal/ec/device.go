package ec

const (
	// CommandPort is the legacy I/O port for EC commands and status reads.
	CommandPort uint16 = 0x66
	// DataPort is the legacy I/O port for EC data transfers.
	DataPort uint16 = 0x62
)

// PortDevice isolates all raw port I/O behind a narrow capability so the
// command driver and control loop can be exercised against a simulated EC.
type PortDevice interface {
	// ReadStatus reads the status byte from the command port. This is a
	// non-destructive probe and may be repeated freely.
	ReadStatus() (byte, error)

	// ReadData reads one byte from the data port, consuming it from the
	// EC output buffer.
	ReadData() (byte, error)

	// WriteCommand writes a command byte to the command port.
	WriteCommand(value byte) error

	// WriteData writes a data byte to the data port.
	WriteData(value byte) error
}
