package controller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/ec"
	"github.com/stretchr/testify/assert"
)

type MockCommander struct {
	Temperature uint8
	TempErr     error
	SpeedErr    error

	mu        sync.Mutex
	speedsSet []uint8
}

func (c *MockCommander) GetTemperature() (uint8, error) {
	if c.TempErr != nil {
		return 0, c.TempErr
	}
	return c.Temperature, nil
}

func (c *MockCommander) SetFanSpeed(percent uint8) error {
	if c.SpeedErr != nil {
		return c.SpeedErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speedsSet = append(c.speedsSet, percent)
	return nil
}

func (c *MockCommander) SpeedsSet() []uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]uint8{}, c.speedsSet...)
}

// waitForSpeed polls until the commander received the given speed or the
// deadline expires.
func waitForSpeed(t *testing.T, commander *MockCommander, speed uint8) {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		for _, s := range commander.SpeedsSet() {
			if s == speed {
				return
			}
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("commander never received speed %d, got %v", speed, commander.SpeedsSet())
}

func TestRunAppliesMinimumSpeedFirst(t *testing.T) {
	// GIVEN
	commander := &MockCommander{Temperature: 50}
	fc := NewFanController(commander, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	// WHEN
	done := make(chan error)
	go func() { done <- fc.Run(ctx) }()
	waitForSpeed(t, commander, FanSpeedMin)
	cancel()

	// THEN
	assert.NoError(t, <-done)
	assert.Equal(t, FanSpeedMin, commander.SpeedsSet()[0])
}

func TestRunRaisesSpeedWhenHot(t *testing.T) {
	// GIVEN a constant temperature above MaxTemp
	commander := &MockCommander{Temperature: 90}
	fc := NewFanController(commander, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	// WHEN
	done := make(chan error)
	go func() { done <- fc.Run(ctx) }()
	waitForSpeed(t, commander, FanSpeedMin+RaiseIncrement)
	cancel()
	assert.NoError(t, <-done)

	// THEN the speed climbed through the expected steps
	speeds := commander.SpeedsSet()
	assert.Equal(t, FanSpeedMin, speeds[0])
	assert.Contains(t, speeds, FanSpeedMin+RaiseIncrement)

	snapshot := fc.Snapshot()
	assert.Equal(t, uint8(90), snapshot.Temperature)
	assert.GreaterOrEqual(t, snapshot.AppliedSpeed, FanSpeedMin)
}

func TestRunPropagatesTemperatureError(t *testing.T) {
	// GIVEN a commander whose temperature reads time out
	expected := &ec.FlagTimeoutError{Flag: ec.OBF, On: true}
	commander := &MockCommander{TempErr: expected}
	fc := NewFanController(commander, time.Millisecond)

	// WHEN
	err := fc.Run(context.Background())

	// THEN the error unwinds without retries
	assert.ErrorIs(t, err, expected)
}

func TestRunPropagatesSpeedError(t *testing.T) {
	// GIVEN a commander that refuses speed changes
	expected := &ec.FlagTimeoutError{Flag: ec.IBF, On: false}
	commander := &MockCommander{Temperature: 50, SpeedErr: expected}
	fc := NewFanController(commander, time.Millisecond)

	// WHEN
	err := fc.Run(context.Background())

	// THEN the initial speed write already fails the loop
	assert.ErrorIs(t, err, expected)
}

func TestSnapshotReflectsCommittedState(t *testing.T) {
	// GIVEN
	commander := &MockCommander{Temperature: 72}
	fc := NewFanController(commander, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	// WHEN
	done := make(chan error)
	go func() { done <- fc.Run(ctx) }()
	waitForSpeed(t, commander, FanSpeedMin)
	cancel()
	assert.NoError(t, <-done)

	// THEN
	snapshot := fc.Snapshot()
	assert.Equal(t, uint8(72), snapshot.Temperature)
	assert.Equal(t, FanSpeedMin, snapshot.TargetSpeed)
	assert.InDelta(t, 72.0, snapshot.AvgTemperature, 0.001)
}
