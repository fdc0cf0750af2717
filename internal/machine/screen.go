package machine

// Screen identifies which of the three screens is active.
//
// Transitions:
//
//	Home ──select──▶ Menu ──select on song──▶ Playing
//	 ▲                │ ▲                        │
//	 └──select Back───┘ └────double prev─────────┘
//
// Select while Playing toggles pause in place; next/prev while Playing
// switch tracks without leaving the screen. There is no terminal screen.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenMenu
	ScreenPlaying
)

// String returns the screen name for debugging.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenMenu:
		return "Menu"
	case ScreenPlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}
