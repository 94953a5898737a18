package io

import (
	"time"
)

// SleepClock implements the cycle-delay backend over the host clock.
// A zero CycleTime makes Delay a no-op, which is what tests want.
type SleepClock struct {
	CycleTime time.Duration // Host duration of one machine cycle.
}

var _ Clock = (*SleepClock)(nil)

// Delay pauses for cycles machine cycles.
func (ck *SleepClock) Delay(cycles uint16) {
	if ck.CycleTime == 0 {
		return
	}

	time.Sleep(time.Duration(cycles) * ck.CycleTime)
}
