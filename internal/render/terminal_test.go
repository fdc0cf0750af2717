package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/minipod/internal/catalog"
	"github.com/llehouerou/minipod/internal/menu"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", formatDuration(0))
	assert.Equal(t, "0:05", formatDuration(5*time.Second))
	assert.Equal(t, "1:23", formatDuration(83*time.Second))
	assert.Equal(t, "12:00", formatDuration(12*time.Minute))
}

func TestRenderProgressBar(t *testing.T) {
	bar := renderProgressBar(30*time.Second, 60*time.Second, 40, true)

	assert.True(t, strings.HasPrefix(bar, "▶"))
	assert.Contains(t, bar, "0:30")
	assert.Contains(t, bar, "1:00")
	assert.Contains(t, bar, filledBlock)
	assert.Contains(t, bar, emptyBlock)
}

func TestRenderProgressBar_Paused(t *testing.T) {
	bar := renderProgressBar(0, 60*time.Second, 40, false)
	assert.True(t, strings.HasPrefix(bar, "⏸"))
}

func TestRenderProgressBar_TooNarrowForBar(t *testing.T) {
	bar := renderProgressBar(5*time.Second, 60*time.Second, 12, true)
	assert.Equal(t, "▶  0:05 / 1:00", bar)
	assert.NotContains(t, bar, filledBlock)
}

func TestTerminal_ClearResetsRegions(t *testing.T) {
	tm := NewTerminal(40)
	tm.DrawPlayingStatic(catalog.Track{Title: "Song", Artist: "Artist", Album: "Album"})
	tm.DrawStatus("hello")

	tm.Clear()

	frame := tm.Frame()
	assert.NotContains(t, frame, "Song")
	assert.NotContains(t, frame, "hello")
}

func TestTerminal_DrawMenuMarksEmptyCatalog(t *testing.T) {
	tm := NewTerminal(40)
	st := menu.NewState(menu.Songs, catalog.Empty(), 5)
	tm.DrawMenu(&st)

	assert.Contains(t, tm.Frame(), "(no songs)")
}

func TestTerminal_ScrollbarOnlyWhenOverflowing(t *testing.T) {
	tm := NewTerminal(40)

	tm.DrawScrollbar(0, 3, 5)
	assert.NotContains(t, tm.Frame(), "1/3")

	tm.DrawScrollbar(1, 9, 5)
	assert.Contains(t, tm.Frame(), "2/9")
}
