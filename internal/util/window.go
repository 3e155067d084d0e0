package util

import "github.com/asecurityteam/rolling"

// CreateRollingWindow creates a rolling window holding the given number of
// data points.
func CreateRollingWindow(size int) *rolling.PointPolicy {
	return rolling.NewPointPolicy(rolling.NewWindow(size))
}
