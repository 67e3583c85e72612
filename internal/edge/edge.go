// Package edge turns sampled button states into press events.
package edge

// Detector remembers the last state of each key. Sample every key of
// interest once per frame; a key skipped for a frame reports its press late.
type Detector[K comparable] struct {
	prev map[K]bool
}

// NewDetector returns a detector with every key released.
func NewDetector[K comparable]() *Detector[K] {
	return &Detector[K]{prev: map[K]bool{}}
}

// Pressed records down as k's state and reports whether k went from
// released to pressed.
func (d *Detector[K]) Pressed(k K, down bool) bool {
	was := d.prev[k]
	d.prev[k] = down
	return down && !was
}

// Any samples every key in states and reports whether any went down. All
// keys are recorded even when an earlier one already fired.
func (d *Detector[K]) Any(states map[K]bool) bool {
	fired := false
	for k, down := range states {
		if d.Pressed(k, down) {
			fired = true
		}
	}
	return fired
}
