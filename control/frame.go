package control

// FrameDelta turns successive clock readings into per-frame deltas. The first
// reading only sets the baseline, and a clock that goes backwards yields 0.
type FrameDelta struct {
	prev        float64
	initialized bool
}

// Next returns the seconds elapsed since the previous reading.
func (f *FrameDelta) Next(now float64) float64 {
	if !f.initialized {
		f.initialized = true
		f.prev = now
		return 0
	}
	dt := now - f.prev
	f.prev = now
	if dt < 0 {
		return 0
	}
	return dt
}
