// Package redraw rate-limits repaints and tracks which screen regions are
// stale, so only changed regions repaint on a slow display path.
package redraw

import (
	"time"

	"github.com/llehouerou/minipod/internal/machine"
	"github.com/llehouerou/minipod/internal/render"
)

// unset is the sentinel shadow value. Shadows hold the previously drawn
// value of every displayed quantity; a full redraw resets them all so the
// partial pass that follows repaints every region once.
const unset = -1

type shadows struct {
	screen       int
	menuID       int
	selIndex     int
	scrollOffset int
	menuLen      int
	playingIndex int
	elapsedSec   int
	durationSec  int
	playing      int // -1 unset, 0 paused, 1 playing
}

// Scheduler owns the frame budget and the shadow values.
type Scheduler struct {
	interval  time.Duration
	lastFrame time.Time
	shadow    shadows
}

// New creates a scheduler with the given target frame interval.
func New(interval time.Duration) *Scheduler {
	s := &Scheduler{interval: interval}
	s.resetShadows()
	return s
}

func (s *Scheduler) resetShadows() {
	s.shadow = shadows{
		screen:       unset,
		menuID:       unset,
		selIndex:     unset,
		scrollOffset: unset,
		menuLen:      unset,
		playingIndex: unset,
		elapsedSec:   unset,
		durationSec:  unset,
		playing:      unset,
	}
}

// Tick runs one scheduler cycle: if the context is dirty and a frame
// interval has elapsed, repaint. A pending full redraw clears the frame,
// resets every shadow and repaints the static block; the partial pass
// then repaints each region whose value differs from its shadow.
// Returns true if anything was painted.
func (s *Scheduler) Tick(now time.Time, ctx *machine.Context, r render.Renderer) bool {
	if !ctx.NeedsRedraw() {
		return false
	}
	if !s.lastFrame.IsZero() && now.Sub(s.lastFrame) < s.interval {
		// Not due yet; the dirty flag stays set for the next tick
		return false
	}

	if ctx.NeedsFullRedraw() {
		r.Clear()
		s.resetShadows()
		s.paintStatic(ctx, r)
		ctx.ClearFullRedraw()
	}

	s.paintChanged(ctx, r)

	ctx.ClearRedraw()
	s.lastFrame = now
	return true
}

// paintStatic draws the regions no shadow tracks. The tracked regions are
// all repainted by the partial pass right after, since every shadow has
// just been reset to its sentinel.
func (s *Scheduler) paintStatic(ctx *machine.Context, r render.Renderer) {
	if ctx.Screen() == machine.ScreenHome {
		r.DrawHome()
	}
	s.shadow.screen = int(ctx.Screen())
}

// paintChanged repaints every region whose backing value differs from its
// shadow, updating the shadow after each repaint.
func (s *Scheduler) paintChanged(ctx *machine.Context, r render.Renderer) {
	switch ctx.Screen() {
	case machine.ScreenHome:
		// Home has no dynamic regions

	case machine.ScreenMenu:
		m := ctx.Menu()
		if s.shadow.menuID != int(m.ID) ||
			s.shadow.selIndex != m.SelectedIndex() ||
			s.shadow.scrollOffset != m.Cursor.Offset() ||
			s.shadow.menuLen != m.Len() {
			r.DrawMenu(m)
			r.DrawScrollbar(m.SelectedIndex(), m.Len(), m.Rows())
			s.shadow.menuID = int(m.ID)
			s.shadow.selIndex = m.SelectedIndex()
			s.shadow.scrollOffset = m.Cursor.Offset()
			s.shadow.menuLen = m.Len()
		}

	case machine.ScreenPlaying:
		if s.shadow.playingIndex != ctx.PlayingIndex() {
			if track, ok := ctx.PlayingTrack(); ok {
				r.DrawPlayingStatic(track)
			}
			s.shadow.playingIndex = ctx.PlayingIndex()
		}

		elapsedSec := int(ctx.Elapsed() / time.Second)
		durationSec := int(ctx.Duration() / time.Second)
		playing := boolShadow(ctx.IsPlaying())

		if s.shadow.elapsedSec != elapsedSec ||
			s.shadow.durationSec != durationSec ||
			s.shadow.playing != playing {
			r.DrawPlayingProgress(ctx.Elapsed(), ctx.Duration(), ctx.IsPlaying())
			s.shadow.elapsedSec = elapsedSec
			s.shadow.durationSec = durationSec
		}

		if s.shadow.playing != playing {
			r.DrawPlayPauseIcon(ctx.IsPlaying())
			s.shadow.playing = playing
		}
	}
}

func boolShadow(b bool) int {
	if b {
		return 1
	}
	return 0
}
