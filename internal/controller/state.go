package controller

import "time"

const (
	// FanSpeedMin is the lowest duty cycle percentage the fan is allowed to
	// run at, FanSpeedMax the highest.
	FanSpeedMin uint8 = 30
	FanSpeedMax uint8 = 100

	// MinTemp is the temperature above which a rising trend raises fan
	// speed; above MaxTemp the speed is raised regardless of trend.
	MinTemp uint8 = 70
	MaxTemp uint8 = 85

	// RaiseIncrement and LowerIncrement are deliberately asymmetric: react
	// fast to heat, back off slowly to avoid audible hunting.
	RaiseIncrement uint8 = 5
	LowerIncrement uint8 = 1

	// RefreshRate is the control loop sampling period.
	RefreshRate = 250 * time.Millisecond

	// ReactionTimeRaise and ReactionTimeLower are how long a classification
	// must persist before a speed change is committed.
	ReactionTimeRaise = 1000 * time.Millisecond
	ReactionTimeLower = 2000 * time.Millisecond

	reactionLoopsRaise = int(ReactionTimeRaise / RefreshRate)
	reactionLoopsLower = int(ReactionTimeLower / RefreshRate)
)

// ControlState is the full mutable state of the control loop, threaded
// through each iteration. It is owned by exactly one goroutine.
type ControlState struct {
	// LastApplied is the percentage handed to the EC by the last committed
	// speed change.
	LastApplied uint8
	// Target is the speed the controller currently wants, always within
	// [FanSpeedMin, FanSpeedMax].
	Target uint8
	// RaisingLoops and LoweringLoops count consecutive iterations with the
	// respective classification. Both reset whenever a change is committed.
	RaisingLoops  int
	LoweringLoops int
	// LastChangeTemp is the temperature observed at the last committed speed
	// change. Classification compares new samples against it, not against
	// the immediately preceding sample, which damps reactions to
	// sample-to-sample noise.
	LastChangeTemp uint8
}

// NewControlState starts the controller at minimum fan speed. LastApplied
// stays zero so the first iteration always commits.
func NewControlState(initialTemp uint8) ControlState {
	return ControlState{
		Target:         FanSpeedMin,
		LastChangeTemp: initialTemp,
	}
}

// isRaising classifies a temperature sample: anything above MaxTemp counts as
// raising, as does any sample above MinTemp that is hotter than the
// temperature at the last committed speed change.
func (s *ControlState) isRaising(temp uint8) bool {
	return temp > MaxTemp || (temp > MinTemp && temp > s.LastChangeTemp)
}

// advance feeds one temperature sample through the hysteresis state machine
// and reports whether the target now differs from the last applied speed.
func (s *ControlState) advance(temp uint8) bool {
	if s.isRaising(temp) {
		s.RaisingLoops++
		if s.RaisingLoops > reactionLoopsRaise {
			s.Target = min(s.Target+RaiseIncrement, FanSpeedMax)
			s.resetLoops()
		}
	} else {
		s.LoweringLoops++
		if s.LoweringLoops > reactionLoopsLower {
			if s.Target > LowerIncrement {
				s.Target = max(s.Target-LowerIncrement, FanSpeedMin)
			} else {
				s.Target = FanSpeedMin
			}
			s.resetLoops()
		}
	}
	return s.Target != s.LastApplied
}

// commit records a successfully applied speed change.
func (s *ControlState) commit(temp uint8) {
	s.resetLoops()
	s.LastApplied = s.Target
	s.LastChangeTemp = temp
}

func (s *ControlState) resetLoops() {
	s.RaisingLoops = 0
	s.LoweringLoops = 0
}
