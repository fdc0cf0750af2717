// Package render draws the three screens from the player's current state.
package render

import (
	"time"

	"github.com/llehouerou/minipod/internal/catalog"
	"github.com/llehouerou/minipod/internal/menu"
)

// Renderer is the drawing contract the redraw scheduler paints through.
// Implementations retain whatever they need so that repainting a single
// region does not disturb the others.
type Renderer interface {
	// Clear wipes every region before a full repaint.
	Clear()
	// DrawHome paints the Home screen.
	DrawHome()
	// DrawMenu paints the menu list with its selection highlight.
	DrawMenu(m *menu.State)
	// DrawScrollbar paints the position indicator for a menu window.
	DrawScrollbar(index, total, viewport int)
	// DrawPlayingStatic paints the song-info block of the Playing screen.
	DrawPlayingStatic(t catalog.Track)
	// DrawPlayingProgress paints the elapsed/duration progress region.
	DrawPlayingProgress(elapsed, duration time.Duration, playing bool)
	// DrawPlayPauseIcon paints the transport state glyph.
	DrawPlayPauseIcon(playing bool)
	// DrawStatus paints the status/error line.
	DrawStatus(msg string)
}

// Verify implementations at compile time.
var (
	_ Renderer = (*Terminal)(nil)
	_ Renderer = (*Recording)(nil)
)
