package render

import (
	"fmt"
	"time"

	"github.com/llehouerou/minipod/internal/catalog"
	"github.com/llehouerou/minipod/internal/menu"
)

// Recording is a test double that logs every draw call.
type Recording struct {
	Calls []string
}

// NewRecording creates an empty recording renderer.
func NewRecording() *Recording {
	return &Recording{}
}

func (r *Recording) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recording) Clear() { r.record("Clear") }

func (r *Recording) DrawHome() { r.record("DrawHome") }

func (r *Recording) DrawMenu(m *menu.State) {
	r.record("DrawMenu(%v,%d)", m.ID, m.SelectedIndex())
}

func (r *Recording) DrawScrollbar(index, total, viewport int) {
	r.record("DrawScrollbar(%d,%d,%d)", index, total, viewport)
}

func (r *Recording) DrawPlayingStatic(t catalog.Track) {
	r.record("DrawPlayingStatic(%s)", t.Title)
}

func (r *Recording) DrawPlayingProgress(elapsed, duration time.Duration, playing bool) {
	r.record("DrawPlayingProgress(%d,%d,%v)",
		int(elapsed/time.Second), int(duration/time.Second), playing)
}

func (r *Recording) DrawPlayPauseIcon(playing bool) {
	r.record("DrawPlayPauseIcon(%v)", playing)
}

func (r *Recording) DrawStatus(msg string) {
	r.record("DrawStatus(%s)", msg)
}

// CountPrefix returns how many recorded calls start with prefix.
func (r *Recording) CountPrefix(prefix string) int {
	n := 0
	for _, c := range r.Calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// Reset clears the call log.
func (r *Recording) Reset() {
	r.Calls = nil
}
