package ec

// Flag identifies one of the two handshake bits in the status byte read from
// the EC command port.
type Flag int

const (
	// OBF (output buffer full) signals that the EC has a byte ready to be
	// read from the data port.
	OBF Flag = iota
	// IBF (input buffer full) signals that the EC has not yet consumed the
	// last byte written to it.
	IBF
)

// Mask returns the bit mask of the flag within the status byte.
func (f Flag) Mask() byte {
	switch f {
	case OBF:
		return 0x01
	case IBF:
		return 0x02
	default:
		return 0x00
	}
}

// IsOn reports whether the flag is set in the given status byte.
func (f Flag) IsOn(status byte) bool {
	mask := f.Mask()
	return status&mask == mask
}

func (f Flag) String() string {
	switch f {
	case OBF:
		return "OBF"
	case IBF:
		return "IBF"
	default:
		return "UNKNOWN"
	}
}
