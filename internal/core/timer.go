package core

import (
	"context"
	"time"
)

// FixedStep paces simulation updates at a steady ticks-per-second rate.
// A non-positive rate disables pacing.
type FixedStep struct {
	step time.Duration
	next time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the time between ticks; zero when unpaced.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Wait blocks until the next tick is due or ctx is done. A caller that falls
// behind is not given a burst of catch-up ticks.
func (f *FixedStep) Wait(ctx context.Context) error {
	if f.step <= 0 {
		return ctx.Err()
	}
	now := time.Now()
	if f.next.IsZero() {
		f.next = now
	}
	f.next = f.next.Add(f.step)
	delay := f.next.Sub(now)
	if delay <= 0 {
		f.next = now
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
