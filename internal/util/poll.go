package util

import "time"

// WaitFor polls condition without any inter-poll delay until it reports true
// or the wall-clock budget has elapsed, whichever comes first. It returns
// false when the budget ran out before the condition held, and propagates any
// error returned by the condition itself.
//
// The tight loop is intentional: callers pace single byte transfers against a
// hardware register and need to observe buffer-state transitions with as
// little latency as possible.
func WaitFor(condition func() (bool, error), budget time.Duration) (bool, error) {
	start := time.Now()
	for {
		ok, err := condition()
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if time.Since(start) > budget {
			return false, nil
		}
	}
}
