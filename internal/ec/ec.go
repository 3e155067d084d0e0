package ec

import (
	"math"
	"time"

	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/util"
)

const (
	// commandTemperature queries the current chip temperature.
	commandTemperature byte = 0x9E
	// commandSpeed sets the fan duty cycle.
	commandSpeed byte = 0x99
	// fanId selects the (single) fan as sub-target of a command.
	fanId byte = 0x01

	// flagWaitBudget bounds every handshake wait. The EC normally reacts
	// within microseconds, so exceeding this means it is unresponsive.
	flagWaitBudget = 1000 * time.Millisecond
)

// Commander is the EC operation surface consumed by the control loop.
type Commander interface {
	// GetTemperature returns the current chip temperature in °C.
	GetTemperature() (uint8, error)

	// SetFanSpeed commands the fan duty cycle as a percentage.
	SetFanSpeed(percent uint8) error
}

// Driver sequences command and data bytes through the EC handshake protocol.
// It performs no retries: a single handshake timeout aborts the in-flight
// operation and propagates to the caller.
type Driver struct {
	device   PortDevice
	flagWait time.Duration
}

func NewDriver(device PortDevice) *Driver {
	return &Driver{
		device:   device,
		flagWait: flagWaitBudget,
	}
}

// waitForFlag busy-polls the status byte until the flag reaches the desired
// state, or fails with a FlagTimeoutError once the wait budget has elapsed.
func (d *Driver) waitForFlag(flag Flag, on bool) error {
	ok, err := util.WaitFor(func() (bool, error) {
		status, err := d.device.ReadStatus()
		if err != nil {
			return false, err
		}
		return flag.IsOn(status) == on, nil
	}, d.flagWait)
	if err != nil {
		return err
	}
	if !ok {
		return &FlagTimeoutError{Flag: flag, On: on}
	}
	return nil
}

// SendCommand writes a command byte to the command port once the EC has
// consumed the previous input byte. There is no read-back verification.
func (d *Driver) SendCommand(command byte) error {
	if err := d.waitForFlag(IBF, false); err != nil {
		return err
	}
	return d.device.WriteCommand(command)
}

// WriteData writes a data byte to the data port once the EC has consumed the
// previous input byte.
func (d *Driver) WriteData(data byte) error {
	if err := d.waitForFlag(IBF, false); err != nil {
		return err
	}
	return d.device.WriteData(data)
}

// ReadByte reads one byte from the data port once the EC has one ready.
func (d *Driver) ReadByte() (byte, error) {
	if err := d.waitForFlag(OBF, true); err != nil {
		return 0, err
	}
	return d.device.ReadData()
}

// Flush drains stale pending output so that a previous unread response cannot
// be misinterpreted as the result of the next operation.
func (d *Driver) Flush() error {
	for {
		status, err := d.device.ReadStatus()
		if err != nil {
			return err
		}
		if !OBF.IsOn(status) {
			return nil
		}
		if _, err := d.device.ReadData(); err != nil {
			return err
		}
	}
}

// GetTemperature returns the current chip temperature in °C.
// The EC interprets the data byte following a command byte as a sub-target
// selector, so the sequence below must execute in exactly this order.
func (d *Driver) GetTemperature() (uint8, error) {
	if err := d.Flush(); err != nil {
		return 0, err
	}
	if err := d.SendCommand(commandTemperature); err != nil {
		return 0, err
	}
	if err := d.WriteData(fanId); err != nil {
		return 0, err
	}
	return d.ReadByte()
}

// SetFanSpeed commands the fan duty cycle as a percentage. Values above 100
// are clamped to full speed.
func (d *Driver) SetFanSpeed(percent uint8) error {
	if err := d.SendCommand(commandSpeed); err != nil {
		return err
	}
	if err := d.WriteData(fanId); err != nil {
		return err
	}
	return d.WriteData(scaleSpeed(percent))
}

// scaleSpeed maps a percentage to the EC's 8 bit full-scale duty cycle
// register.
func scaleSpeed(percent uint8) byte {
	return byte(math.Floor(float64(min(percent, 100)) / 100 * 255))
}
