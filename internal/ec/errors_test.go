package ec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionErrorMessage(t *testing.T) {
	// GIVEN
	err := &PermissionError{Port: CommandPort, ReturnCode: -1}

	// THEN
	assert.Equal(t, "failed to set I/O permission for port 0x66, got return value -1", err.Error())
}

func TestFlagTimeoutErrorMessage(t *testing.T) {
	// GIVEN
	onErr := &FlagTimeoutError{Flag: OBF, On: true}
	offErr := &FlagTimeoutError{Flag: IBF, On: false}

	// THEN
	assert.Equal(t, "timed out waiting for command flag OBF to be on", onErr.Error())
	assert.Equal(t, "timed out waiting for command flag IBF to be off", offErr.Error())
}
