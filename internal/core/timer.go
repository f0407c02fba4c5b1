package core

import "time"

// maxBacklog bounds how many generations a stalled frame loop may owe.
const maxBacklog = 4

// FixedStep paces simulation generations at a fixed rate, independent of how
// often the host redraws. One true result from ShouldStep is one generation.
type FixedStep struct {
	interval time.Duration
	owed     time.Duration
	last     time.Time
	now      func() time.Time
}

// NewFixedStep returns a pacer for tps generations per second. The first call
// to ShouldStep always reports true so a freshly loaded world advances at once.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.owed = fs.interval
	return fs
}

// SetTPS changes the generation rate; non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.interval = time.Second / time.Duration(tps)
}

// Interval is the time budget of one generation.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// ShouldStep reports whether a generation is due. Time owed beyond a few
// generations is dropped so a window that was dragged or hidden does not
// replay a burst.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.owed += now.Sub(f.last)
	f.last = now
	if limit := maxBacklog * f.interval; f.owed > limit {
		f.owed = limit
	}
	if f.owed < f.interval {
		return false
	}
	f.owed -= f.interval
	return true
}
