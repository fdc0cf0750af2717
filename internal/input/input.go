// Package input turns noisy button signals into clean pressed-edge events
// for the three logical buttons.
package input

import "time"

// Button identifies one of the three logical buttons.
type Button int

const (
	Prev Button = iota // Prev/Up
	Next               // Next/Down
	Select             // Select/Play
)

const numButtons = 3

// String returns the button name for debugging.
func (b Button) String() string {
	switch b {
	case Prev:
		return "Prev"
	case Next:
		return "Next"
	case Select:
		return "Select"
	default:
		return "Unknown"
	}
}

type buttonState struct {
	raw          bool // last raw level, true = pressed
	stable       bool // debounced level
	lastChange   time.Time
	lastAccepted time.Time
}

// Debouncer converts raw button levels into single "fell" events. A level
// must hold for the debounce interval before it commits, so mechanical
// bounce never registers twice. Hosts that only see clean key events use
// Press, which collapses key autorepeat with the same interval.
type Debouncer struct {
	interval time.Duration
	state    [numButtons]buttonState
}

// New creates a debouncer with the given interval (~25ms on real switches).
func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Sample feeds the raw level for b at time now and reports whether a
// debounced falling (pressed) edge occurred on this sample.
func (d *Debouncer) Sample(b Button, pressed bool, now time.Time) bool {
	st := &d.state[b]

	if pressed != st.raw {
		st.raw = pressed
		st.lastChange = now
		return false
	}

	// Level unchanged; commit it once it has held for the interval
	if pressed == st.stable || now.Sub(st.lastChange) < d.interval {
		return false
	}

	st.stable = pressed
	if pressed {
		st.lastAccepted = now
		return true
	}
	return false
}

// Press reports whether an already-clean pressed event at now should
// register for b. Events within the interval of the previous accepted
// press are dropped as bounce or autorepeat.
func (d *Debouncer) Press(b Button, now time.Time) bool {
	st := &d.state[b]
	if !st.lastAccepted.IsZero() && now.Sub(st.lastAccepted) < d.interval {
		return false
	}
	st.lastAccepted = now
	return true
}

// Reset clears all button state.
func (d *Debouncer) Reset() {
	d.state = [numButtons]buttonState{}
}
