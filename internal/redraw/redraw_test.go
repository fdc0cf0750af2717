package redraw

import (
	"testing"
	"time"

	"github.com/llehouerou/minipod/internal/catalog"
	"github.com/llehouerou/minipod/internal/machine"
	"github.com/llehouerou/minipod/internal/render"
	"github.com/llehouerou/minipod/internal/transport"
)

const interval = 33 * time.Millisecond

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Track{
		{Filename: "/m/a.mp3", Title: "A", Artist: "X", Album: "Y", Duration: 100 * time.Second},
		{Filename: "/m/b.mp3", Title: "B", Artist: "X", Album: "Y", Duration: 100 * time.Second},
	})
}

func newFixture() (*machine.Context, *transport.Mock, *Scheduler, *render.Recording) {
	tr := transport.NewMock(100 * time.Second)
	ctx := machine.New(testCatalog(), tr, machine.Options{VisibleRows: 5})
	return ctx, tr, New(interval), render.NewRecording()
}

func TestTick_CleanContextDoesNothing(t *testing.T) {
	ctx, _, s, r := newFixture()
	now := time.Now()

	// Boot state is dirty; first tick paints
	if !s.Tick(now, ctx, r) {
		t.Fatal("first tick should paint")
	}

	r.Reset()
	if s.Tick(now.Add(interval), ctx, r) {
		t.Error("tick with clean flags should not paint")
	}
	if len(r.Calls) != 0 {
		t.Errorf("unexpected calls: %v", r.Calls)
	}
}

func TestTick_RateLimited(t *testing.T) {
	ctx, _, s, r := newFixture()
	now := time.Now()
	s.Tick(now, ctx, r)

	// Make it dirty again immediately
	_ = ctx.OnSelect(now)
	r.Reset()

	if s.Tick(now.Add(interval/2), ctx, r) {
		t.Error("tick inside the frame budget should be skipped")
	}
	if !ctx.NeedsRedraw() {
		t.Error("skipped tick must leave the dirty flag set")
	}

	if !s.Tick(now.Add(interval), ctx, r) {
		t.Error("tick after the frame budget should paint")
	}
	if ctx.NeedsRedraw() {
		t.Error("painting should clear the dirty flag")
	}
}

func TestTick_FullRedrawOnScreenChange(t *testing.T) {
	ctx, _, s, r := newFixture()
	now := time.Now()
	s.Tick(now, ctx, r)

	_ = ctx.OnSelect(now) // Home -> Menu, full redraw
	r.Reset()
	s.Tick(now.Add(interval), ctx, r)

	if r.CountPrefix("Clear") != 1 {
		t.Errorf("expected one Clear, calls: %v", r.Calls)
	}
	if r.CountPrefix("DrawMenu") != 1 {
		t.Errorf("expected one DrawMenu, calls: %v", r.Calls)
	}
	if r.CountPrefix("DrawScrollbar") != 1 {
		t.Errorf("expected one DrawScrollbar, calls: %v", r.Calls)
	}
	if ctx.NeedsFullRedraw() {
		t.Error("full flag should be cleared after the repaint")
	}
}

func TestTick_SelectionChangeIsPartial(t *testing.T) {
	ctx, _, s, r := newFixture()
	now := time.Now()
	s.Tick(now, ctx, r)
	_ = ctx.OnSelect(now)
	s.Tick(now.Add(interval), ctx, r)

	_ = ctx.OnNext(now) // move selection
	r.Reset()
	s.Tick(now.Add(2*interval), ctx, r)

	if r.CountPrefix("Clear") != 0 {
		t.Errorf("selection change must not clear, calls: %v", r.Calls)
	}
	if r.CountPrefix("DrawMenu") != 1 {
		t.Errorf("expected one DrawMenu, calls: %v", r.Calls)
	}
}

func TestTick_UnchangedRegionsSkipped(t *testing.T) {
	ctx, tr, s, r := newFixture()
	now := time.Now()
	s.Tick(now, ctx, r)
	_ = ctx.OnSelect(now) // Menu
	s.Tick(now.Add(interval), ctx, r)
	_ = ctx.OnSelect(now) // Songs menu
	s.Tick(now.Add(2*interval), ctx, r)
	_ = ctx.OnSelect(now) // play track 0
	s.Tick(now.Add(3*interval), ctx, r)

	// Elapsed advances within the same second: dirty but value unchanged
	tr.Advance(100 * time.Millisecond)
	_ = ctx.Tick(now)
	r.Reset()
	s.Tick(now.Add(4*interval), ctx, r)

	if n := r.CountPrefix("DrawPlayingProgress"); n != 0 {
		t.Errorf("progress repainted %d times for unchanged second, calls: %v", n, r.Calls)
	}
	if n := r.CountPrefix("DrawPlayingStatic"); n != 0 {
		t.Errorf("static block repainted without track change, calls: %v", n, r.Calls)
	}
}

func TestTick_ElapsedSecondRepaintsProgressOnly(t *testing.T) {
	ctx, tr, s, r := newFixture()
	now := time.Now()
	s.Tick(now, ctx, r)
	_ = ctx.OnSelect(now)
	s.Tick(now.Add(interval), ctx, r)
	_ = ctx.OnSelect(now)
	s.Tick(now.Add(2*interval), ctx, r)
	_ = ctx.OnSelect(now)
	s.Tick(now.Add(3*interval), ctx, r)

	tr.Advance(1 * time.Second)
	_ = ctx.Tick(now)
	r.Reset()
	s.Tick(now.Add(4*interval), ctx, r)

	if r.CountPrefix("DrawPlayingProgress") != 1 {
		t.Errorf("expected one progress repaint, calls: %v", r.Calls)
	}
	if r.CountPrefix("Clear") != 0 {
		t.Errorf("elapsed change must not clear, calls: %v", r.Calls)
	}
	if r.CountPrefix("DrawPlayPauseIcon") != 0 {
		t.Errorf("icon repainted without state change, calls: %v", r.Calls)
	}
}

func TestTick_FullRedrawResetsShadows(t *testing.T) {
	ctx, _, s, r := newFixture()
	now := time.Now()
	s.Tick(now, ctx, r)
	_ = ctx.OnSelect(now)
	s.Tick(now.Add(interval), ctx, r)
	_ = ctx.OnSelect(now)
	s.Tick(now.Add(2*interval), ctx, r)
	_ = ctx.OnSelect(now) // Playing
	s.Tick(now.Add(3*interval), ctx, r)

	// Force a full redraw with every displayed value unchanged
	_ = ctx.OnSelect(now) // pause
	_ = ctx.OnSelect(now) // resume: isPlaying back to original
	_ = ctx.OnPrev(now)   // rewind: elapsed already 0, marks dirty
	r.Reset()

	// Values match what was last drawn, but a full redraw must still
	// repaint every dynamic region once
	forceFull(ctx)
	s.Tick(now.Add(4*interval), ctx, r)

	if r.CountPrefix("Clear") != 1 {
		t.Fatalf("expected Clear, calls: %v", r.Calls)
	}
	if r.CountPrefix("DrawPlayingStatic") != 1 {
		t.Errorf("static block should repaint once after full redraw, calls: %v", r.Calls)
	}
	if r.CountPrefix("DrawPlayingProgress") != 1 {
		t.Errorf("progress should repaint once after full redraw, calls: %v", r.Calls)
	}
	if r.CountPrefix("DrawPlayPauseIcon") != 1 {
		t.Errorf("icon should repaint once after full redraw, calls: %v", r.Calls)
	}
}

// forceFull marks the context for a clearing repaint the way any
// screen/menu/track mutation would.
func forceFull(ctx *machine.Context) {
	ctx.ForceFullRedraw()
}
