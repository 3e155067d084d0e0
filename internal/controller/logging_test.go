package controller

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

// captureOutput redirects all printer output into a buffer for the duration
// of fn.
func captureOutput(fn func()) string {
	buffer := &bytes.Buffer{}
	pterm.SetDefaultOutput(buffer)
	pterm.DisableStyling()
	defer func() {
		pterm.SetDefaultOutput(os.Stdout)
		pterm.EnableStyling()
	}()

	fn()

	return buffer.String()
}

// committedController returns a controller whose state looks like a change to
// the given speed was just committed at the given temperature.
func committedController(commander *MockCommander, speed uint8, temp uint8) *fanController {
	fc := NewFanController(commander, time.Millisecond).(*fanController)
	fc.state = committedState(speed, temp)
	return fc
}

func TestRaisingIterationsAreReportedAtInfoLevel(t *testing.T) {
	// GIVEN a committed minimum speed and a temperature above MaxTemp
	commander := &MockCommander{Temperature: 90}
	fc := committedController(commander, FanSpeedMin, 70)

	// WHEN iterating through the raise reaction window
	output := captureOutput(func() {
		for i := 0; i <= reactionLoopsRaise; i++ {
			assert.NoError(t, fc.cycle())
		}
	})

	// THEN every iteration reports its sample and decision as INFO
	assert.Contains(t, output, "INFO: Temperature: 90 C")
	assert.Contains(t, output, "INFO: Raising or over max!")
	assert.Contains(t, output, "INFO: Changing fan speed 30 % => 35 %")
}

func TestSteadyIterationsAreReportedAtInfoLevel(t *testing.T) {
	// GIVEN a committed minimum speed and a cool, steady temperature
	commander := &MockCommander{Temperature: 50}
	fc := committedController(commander, FanSpeedMin, 70)

	// WHEN
	output := captureOutput(func() {
		assert.NoError(t, fc.cycle())
	})

	// THEN
	assert.Contains(t, output, "INFO: Temperature: 50 C")
	assert.Contains(t, output, "INFO: Lowering or staying the same.")
	assert.Contains(t, output, "INFO: Keeping fan speed at 30 %")
}
