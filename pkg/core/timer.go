package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to ShouldStep always reports true.
func NewFixedStep(tps int) *FixedStep {
	return newFixedStep(tps, time.Now)
}

func newFixedStep(tps int, now func() time.Time) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to 60; rates
// above one tick per nanosecond are clamped to it.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = max(time.Second/time.Duration(tps), time.Nanosecond)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Pending drains the accumulator and returns how many whole ticks are due.
// Hosts that fell behind use it to catch up without calling ShouldStep in a loop.
func (f *FixedStep) Pending() int {
	n := 0
	for f.ShouldStep() {
		n++
	}
	return n
}
