// Package machine is the player core: it interprets the three button
// edges into navigation, selection and transport control across the
// Home, Menu and Playing screens.
package machine

import (
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/minipod/internal/catalog"
	"github.com/llehouerou/minipod/internal/menu"
	"github.com/llehouerou/minipod/internal/transport"
)

// ErrEmptyCatalog rejects catalog-index operations when no tracks are
// loaded. Callers treat it as a no-op, never a crash.
var ErrEmptyCatalog = errors.New("catalog is empty")

// Options tunes the state machine.
type Options struct {
	VisibleRows       int           // menu window height
	DoubleClickWindow time.Duration // prev double-click threshold
}

// Context is the single owned aggregate of all player state. Handlers
// mutate it in place; nothing here is safe for concurrent use, matching
// the one cooperative loop it runs on.
type Context struct {
	cat *catalog.Catalog
	tr  transport.Transport
	opt Options

	screen     Screen
	prevScreen Screen
	menu       menu.State

	playingIndex int
	isPlaying    bool
	elapsed      time.Duration
	duration     time.Duration

	// Zero value is the sentinel: no prior prev-click recorded.
	lastPrevClick time.Time

	needsRedraw     bool
	needsFullRedraw bool
}

// New creates a context on the Home screen.
func New(cat *catalog.Catalog, tr transport.Transport, opt Options) *Context {
	if opt.VisibleRows <= 0 {
		opt.VisibleRows = 5
	}
	if opt.DoubleClickWindow <= 0 {
		opt.DoubleClickWindow = 300 * time.Millisecond
	}
	return &Context{
		cat:             cat,
		tr:              tr,
		opt:             opt,
		screen:          ScreenHome,
		prevScreen:      ScreenHome,
		playingIndex:    -1,
		needsRedraw:     true,
		needsFullRedraw: true,
	}
}

// OnSelect handles a Select/Play falling edge.
func (c *Context) OnSelect(now time.Time) error {
	switch c.screen {
	case ScreenHome:
		c.enterMenu(menu.Main)

	case ScreenMenu:
		return c.selectMenuItem(now)

	case ScreenPlaying:
		c.togglePause()
	}
	return nil
}

// OnNext handles a Next/Down falling edge.
func (c *Context) OnNext(now time.Time) error {
	switch c.screen {
	case ScreenHome:
		// Nothing to advance

	case ScreenMenu:
		c.menu.Next()
		c.markDirty()

	case ScreenPlaying:
		return c.skipTrack(1)
	}
	return nil
}

// OnPrev handles a Prev/Up falling edge.
func (c *Context) OnPrev(now time.Time) error {
	switch c.screen {
	case ScreenHome:
		// Nothing to retreat

	case ScreenMenu:
		c.menu.Prev()
		c.markDirty()

	case ScreenPlaying:
		c.prevWhilePlaying(now)
	}
	return nil
}

// Tick services the playback path for one loop iteration. It must run
// before input handling so audio never starves while the loop also
// services buttons and redraws.
func (c *Context) Tick(now time.Time) error {
	if c.screen != ScreenPlaying || !c.isPlaying {
		return nil
	}

	if !c.tr.CopyChunk() {
		// End of stream: advance to the next track
		return c.skipTrack(1)
	}

	if elapsed := c.tr.Elapsed(); elapsed/time.Second != c.elapsed/time.Second {
		c.elapsed = elapsed
		c.markDirty()
	} else {
		c.elapsed = elapsed
	}
	return nil
}

// selectMenuItem dispatches Select on the active menu. The trailing Back
// entry wins over any menu-specific meaning.
func (c *Context) selectMenuItem(_ time.Time) error {
	if c.menu.IsBackSelected() {
		c.goBack()
		return nil
	}

	switch c.menu.ID {
	case menu.Main:
		switch c.menu.SelectedIndex() {
		case menu.MainMusic, menu.MainSongs:
			c.enterMenu(menu.Songs)
		case menu.MainArtists:
			c.enterMenu(menu.Artists)
		case menu.MainAlbums:
			c.enterMenu(menu.Albums)
		case menu.MainSettings:
			// Not wired to a screen
		}

	case menu.Songs:
		return c.startPlayback(c.menu.SelectedIndex())

	case menu.Artists, menu.Albums:
		// Informational lists; selecting a name does nothing
	}
	return nil
}

// goBack leaves the active menu: sub-menus return to Main, Main returns
// to the Home screen.
func (c *Context) goBack() {
	if c.menu.ID == menu.Main {
		c.setScreen(ScreenHome)
		return
	}
	c.enterMenu(menu.Main)
}

// enterMenu activates a menu with selection and scroll reset to (0,0).
func (c *Context) enterMenu(id menu.ID) {
	c.menu = menu.NewState(id, c.cat, c.opt.VisibleRows)
	c.setScreen(ScreenMenu)
	c.markFull()
}

// togglePause flips play/pause in place on the Playing screen.
func (c *Context) togglePause() {
	if c.isPlaying {
		c.tr.Pause()
		c.isPlaying = false
	} else {
		c.tr.Resume()
		c.isPlaying = true
	}
	c.markDirty()
}

// skipTrack switches playback to the track delta positions away,
// wrapping modulo the catalog size.
func (c *Context) skipTrack(delta int) error {
	n := c.cat.Len()
	if n == 0 {
		return ErrEmptyCatalog
	}
	next := ((c.playingIndex+delta)%n + n) % n
	return c.startPlayback(next)
}

// prevWhilePlaying disambiguates single click (rewind to start) from
// double click (stop and return to the last menu).
func (c *Context) prevWhilePlaying(now time.Time) {
	if !c.lastPrevClick.IsZero() && now.Sub(c.lastPrevClick) < c.opt.DoubleClickWindow {
		// Double click: stop and fall back to the menu shown before
		// Playing. Reset the reference so a third rapid click is not
		// read as another double.
		c.lastPrevClick = time.Time{}
		c.tr.Close()
		c.isPlaying = false
		c.setScreen(ScreenMenu)
		return
	}

	// Single click: rewind to start, keep playing, and make this click
	// the reference for the next comparison.
	c.lastPrevClick = now
	c.tr.SeekToStart()
	c.elapsed = 0
	c.markDirty()
}

// startPlayback opens a transport session for the catalog index and
// enters the Playing screen. On open failure the attempt is aborted:
// the screen stays put and isPlaying is false.
func (c *Context) startPlayback(index int) error {
	track, ok := c.cat.Track(index)
	if !ok {
		return ErrEmptyCatalog
	}

	// Never two sessions at once
	c.tr.Close()

	if err := c.tr.Open(track.Filename); err != nil {
		c.isPlaying = false
		c.markDirty()
		return fmt.Errorf("open %s: %w", track.Filename, err)
	}
	c.tr.BeginDecode()

	c.playingIndex = index
	c.isPlaying = true
	c.elapsed = 0
	c.duration = track.Duration
	if d := c.tr.Duration(); d > 0 {
		c.duration = d
	}

	c.setScreen(ScreenPlaying)
	c.markFull()
	return nil
}

// RestoreMenu re-enters a menu with a saved cursor position, clamped to
// the current item count. Used on session restore.
func (c *Context) RestoreMenu(id menu.ID, selected int) {
	c.enterMenu(id)
	c.menu.Cursor.Set(selected, c.menu.Len(), c.opt.VisibleRows)
}

// Shutdown closes any open playback session.
func (c *Context) Shutdown() {
	c.tr.Close()
	c.isPlaying = false
}

// setScreen records the screen change; any change forces a full repaint.
func (c *Context) setScreen(s Screen) {
	if c.screen == s {
		return
	}
	c.prevScreen = c.screen
	c.screen = s
	c.markFull()
}

func (c *Context) markDirty() {
	c.needsRedraw = true
}

func (c *Context) markFull() {
	c.needsRedraw = true
	c.needsFullRedraw = true
}

// State accessors for the redraw scheduler and host.

func (c *Context) Screen() Screen { return c.screen }

func (c *Context) PreviousScreen() Screen { return c.prevScreen }

func (c *Context) Menu() *menu.State { return &c.menu }

func (c *Context) Catalog() *catalog.Catalog { return c.cat }

func (c *Context) PlayingIndex() int { return c.playingIndex }

// PlayingTrack returns the track currently loaded, if any.
func (c *Context) PlayingTrack() (catalog.Track, bool) {
	return c.cat.Track(c.playingIndex)
}

func (c *Context) IsPlaying() bool { return c.isPlaying }

func (c *Context) Elapsed() time.Duration { return c.elapsed }

func (c *Context) Duration() time.Duration { return c.duration }

// ForceFullRedraw requests a clearing repaint, e.g. after the host's
// display surface resizes.
func (c *Context) ForceFullRedraw() { c.markFull() }

// NeedsRedraw reports whether any region is stale.
func (c *Context) NeedsRedraw() bool { return c.needsRedraw }

// NeedsFullRedraw reports whether the whole screen must repaint.
func (c *Context) NeedsFullRedraw() bool { return c.needsFullRedraw }

// ClearFullRedraw is called by the scheduler after a clearing repaint.
func (c *Context) ClearFullRedraw() { c.needsFullRedraw = false }

// ClearRedraw is called by the scheduler once a repaint cycle completes.
func (c *Context) ClearRedraw() { c.needsRedraw = false }
