package input

import "time"

// HoldTracker guesses key releases. Terminals only report presses, and a held
// key shows up as a pause of the keyboard's repeat delay followed by a stream
// of repeats. A key counts as released once no press arrived for the initial
// window (before its first repeat) or the repeat window (after it).
type HoldTracker struct {
	initial, repeat time.Duration
	keys            map[int]*heldKey
}

type heldKey struct {
	last      time.Time
	repeating bool
}

func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	if initial < repeat {
		initial = repeat
	}
	return &HoldTracker{initial: initial, repeat: repeat, keys: map[int]*heldKey{}}
}

func (h *HoldTracker) window(k *heldKey) time.Duration {
	if k.repeating {
		return h.repeat
	}
	return h.initial
}

// Press records a press and reports if it is fresh, not a repeat.
func (h *HoldTracker) Press(lane int, at time.Time) bool {
	k, held := h.keys[lane]
	if !held || at.Sub(k.last) >= h.window(k) {
		h.keys[lane] = &heldKey{last: at}
		return true
	}
	k.last = at
	k.repeating = true
	return false
}

// Released returns the lanes whose window ran out, forgetting them.
func (h *HoldTracker) Released(now time.Time) []int {
	lanes := []int{}
	for lane, k := range h.keys {
		if now.Sub(k.last) >= h.window(k) {
			lanes = append(lanes, lane)
			delete(h.keys, lane)
		}
	}
	return lanes
}
