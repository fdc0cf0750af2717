package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/minipod/internal/catalog"
	"github.com/llehouerou/minipod/internal/menu"
)

var (
	titleFrom = lipgloss.Color("#5fafff")
	titleTo   = lipgloss.Color("#af87ff")

	headerStyle = lipgloss.NewStyle().Bold(true)
	selStyle    = lipgloss.NewStyle().Reverse(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	frameStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// Terminal renders each region into a retained string so that a partial
// repaint only touches the region whose value changed; the host composes
// the cached regions into the visible frame.
type Terminal struct {
	width int

	header    string
	body      string
	progress  string
	icon      string
	scrollbar string
	status    string
}

// NewTerminal creates a terminal renderer for the given frame width.
func NewTerminal(width int) *Terminal {
	return &Terminal{width: width}
}

// SetWidth adjusts the frame width on terminal resize.
func (t *Terminal) SetWidth(width int) {
	t.width = width
}

func (t *Terminal) Clear() {
	t.header = ""
	t.body = ""
	t.progress = ""
	t.icon = ""
	t.scrollbar = ""
	t.status = ""
}

func (t *Terminal) DrawHome() {
	t.header = applyGradient("minipod", true, titleFrom, titleTo)
	t.body = dimStyle.Render("Press Select to open the menu")
}

func (t *Terminal) DrawMenu(m *menu.State) {
	t.header = headerStyle.Render(m.ID.String())

	start, end := m.VisibleRange()
	var b strings.Builder
	for i := start; i < end; i++ {
		label := Truncate(m.Items[i], t.innerWidth()-4)
		if i == m.SelectedIndex() {
			b.WriteString(selStyle.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if m.Len() == 1 {
		// Only the Back entry: the catalog is empty
		b.WriteString("\n" + dimStyle.Render("  (no songs)"))
	}
	t.body = b.String()
}

func (t *Terminal) DrawScrollbar(index, total, viewport int) {
	if total <= viewport {
		t.scrollbar = ""
		return
	}
	t.scrollbar = dimStyle.Render(fmt.Sprintf("%d/%d", index+1, total))
}

func (t *Terminal) DrawPlayingStatic(tr catalog.Track) {
	t.header = headerStyle.Render("Now Playing")

	w := t.innerWidth()
	var b strings.Builder
	b.WriteString(applyGradient(Truncate(tr.Title, w), true, titleFrom, titleTo))
	b.WriteString("\n")
	b.WriteString(Truncate(tr.Artist, w))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(Truncate(tr.Album, w)))
	t.body = b.String()
}

func (t *Terminal) DrawPlayingProgress(elapsed, duration time.Duration, playing bool) {
	t.progress = renderProgressBar(elapsed, duration, t.innerWidth(), playing)
}

func (t *Terminal) DrawPlayPauseIcon(playing bool) {
	if playing {
		t.icon = "▶"
	} else {
		t.icon = "⏸"
	}
}

func (t *Terminal) DrawStatus(msg string) {
	if msg == "" {
		t.status = ""
		return
	}
	t.status = dimStyle.Render(Truncate(msg, t.innerWidth()))
}

// Frame composes the cached regions into the full frame.
func (t *Terminal) Frame() string {
	var b strings.Builder
	b.WriteString(t.header)
	if t.scrollbar != "" {
		b.WriteString("  " + t.scrollbar)
	}
	b.WriteString("\n\n")
	b.WriteString(t.body)
	if t.progress != "" {
		b.WriteString("\n\n")
		b.WriteString(t.progress)
	}
	if t.status != "" {
		b.WriteString("\n\n")
		b.WriteString(t.status)
	}
	return frameStyle.Width(t.innerWidth()).Render(b.String())
}

func (t *Terminal) innerWidth() int {
	// Subtract the frame border
	return max(t.width-2, 0)
}

// renderProgressBar renders a block-style progress bar.
// Format: ▶  1:23  ▓▓▓▓▓░░░░░  4:56
func renderProgressBar(position, duration time.Duration, width int, playing bool) string {
	status := "▶"
	if !playing {
		status = "⏸"
	}

	posStr := formatDuration(position)
	durStr := formatDuration(duration)

	fixedWidth := lipgloss.Width(status) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth

	if barWidth < 3 {
		// Too narrow for bar, just show times
		return status + "  " + posStr + " / " + durStr
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled)

	return status + "  " + posStr + "  " + bar + "  " + durStr
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
