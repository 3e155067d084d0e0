package controller

import (
	"context"
	"sync"
	"time"

	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/ec"
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/ui"
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/util"
	"github.com/asecurityteam/rolling"
)

// temperature samples kept for the rolling average exposed to observers
const tempRollingWindowSize = 40

// FanController runs the temperature sampling and fan speed control loop.
type FanController interface {
	// Run drives the control loop until the context is cancelled or an EC
	// operation fails. EC failures are not retried.
	Run(ctx context.Context) error

	// Snapshot returns the current controller state for observers (metrics,
	// status API). Safe for concurrent use.
	Snapshot() Snapshot
}

// Snapshot is a point-in-time copy of the observable controller state.
type Snapshot struct {
	Temperature    uint8   `json:"temperature"`
	AvgTemperature float64 `json:"avgTemperature"`
	TargetSpeed    uint8   `json:"targetSpeed"`
	AppliedSpeed   uint8   `json:"appliedSpeed"`
	SpeedChanges   int     `json:"speedChanges"`
}

type fanController struct {
	commander   ec.Commander
	refreshRate time.Duration

	state        ControlState
	lastTemp     uint8
	speedChanges int
	tempWindow   *rolling.PointPolicy

	// guards the fields above against concurrent Snapshot readers; the
	// control loop itself is single-threaded
	mu sync.RWMutex
}

func NewFanController(commander ec.Commander, refreshRate time.Duration) FanController {
	return &fanController{
		commander:   commander,
		refreshRate: refreshRate,
		tempWindow:  util.CreateRollingWindow(tempRollingWindowSize),
	}
}

func (f *fanController) Run(ctx context.Context) error {
	// bring the fan into a known state before the first sample
	f.mu.Lock()
	f.state = NewControlState(0)
	f.mu.Unlock()
	if err := f.commander.SetFanSpeed(FanSpeedMin); err != nil {
		return err
	}

	temp, err := f.commander.GetTemperature()
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.state.LastChangeTemp = temp
	f.lastTemp = temp
	fillWindow(f.tempWindow, tempRollingWindowSize, float64(temp))
	f.mu.Unlock()

	ui.Info("Starting controller loop, initial temperature: %d C", temp)

	tick := time.Tick(f.refreshRate)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			if err := f.cycle(); err != nil {
				return err
			}
		}
	}
}

// cycle executes one control loop iteration: sample, classify, debounce, and
// apply a speed change if one was committed.
func (f *fanController) cycle() error {
	temp, err := f.commander.GetTemperature()
	if err != nil {
		return err
	}
	ui.Info("Temperature: %d C", temp)

	f.mu.Lock()
	raising := f.state.isRaising(temp)
	changed := f.state.advance(temp)
	f.lastTemp = temp
	f.tempWindow.Append(float64(temp))
	// counter reset is re-asserted before touching the hardware
	if changed {
		f.state.resetLoops()
	}
	target, lastApplied := f.state.Target, f.state.LastApplied
	f.mu.Unlock()

	if raising {
		ui.Info("Raising or over max!")
	} else {
		ui.Info("Lowering or staying the same.")
	}

	if !changed {
		ui.Info("Keeping fan speed at %d %%", target)
		return nil
	}

	ui.Info("Changing fan speed %d %% => %d %%", lastApplied, target)

	if err := f.commander.SetFanSpeed(target); err != nil {
		return err
	}

	f.mu.Lock()
	f.state.commit(temp)
	f.speedChanges++
	f.mu.Unlock()

	return nil
}

// completely fills the given window with the given value
func fillWindow(window *rolling.PointPolicy, size int, value float64) {
	for i := 0; i < size; i++ {
		window.Append(value)
	}
}

func (f *fanController) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return Snapshot{
		Temperature:    f.lastTemp,
		AvgTemperature: f.tempWindow.Reduce(rolling.Avg),
		TargetSpeed:    f.state.Target,
		AppliedSpeed:   f.state.LastApplied,
		SpeedChanges:   f.speedChanges,
	}
}
