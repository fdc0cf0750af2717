// Package menu produces the selectable item lists for each menu screen
// and tracks the selection and scroll state of the active one.
package menu

import "github.com/llehouerou/minipod/internal/catalog"

// ID identifies one of the four menus.
type ID int

const (
	Main ID = iota
	Artists
	Albums
	Songs
)

// String returns the menu title shown in the header.
func (id ID) String() string {
	switch id {
	case Main:
		return "Menu"
	case Artists:
		return "Artists"
	case Albums:
		return "Albums"
	case Songs:
		return "Songs"
	default:
		return "Unknown"
	}
}

// ParseID maps a menu title back to its ID, for session restore.
func ParseID(name string) (ID, bool) {
	switch name {
	case "Menu":
		return Main, true
	case "Artists":
		return Artists, true
	case "Albums":
		return Albums, true
	case "Songs":
		return Songs, true
	default:
		return Main, false
	}
}

// BackLabel is the trailing entry appended to every menu.
const BackLabel = "Back"

// Main menu entries and what they dispatch to.
const (
	MainMusic = iota
	MainArtists
	MainAlbums
	MainSongs
	MainSettings
	MainBack
)

var mainItems = []string{"Music", "Artists", "Albums", "Songs", "Settings", BackLabel}

// ItemsFor returns the ordered item list for a menu. Every list ends with
// the Back entry.
func ItemsFor(id ID, c *catalog.Catalog) []string {
	switch id {
	case Main:
		return mainItems
	case Artists:
		return append(copyOf(c.Artists()), BackLabel)
	case Albums:
		return append(copyOf(c.Albums()), BackLabel)
	case Songs:
		items := make([]string, 0, c.Len()+1)
		for _, t := range c.Tracks() {
			items = append(items, t.Title)
		}
		return append(items, BackLabel)
	default:
		return []string{BackLabel}
	}
}

func copyOf(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// State is the live state of the active menu: its items plus the cursor.
// It is rebuilt whenever the active menu changes.
type State struct {
	ID     ID
	Items  []string
	Cursor Cursor

	rows int // visible window height
}

// NewState builds the state for entering a menu, with selection and
// scroll reset to (0,0).
func NewState(id ID, c *catalog.Catalog, visibleRows int) State {
	return State{
		ID:    id,
		Items: ItemsFor(id, c),
		rows:  visibleRows,
	}
}

// Len returns the item count.
func (s *State) Len() int {
	return len(s.Items)
}

// Rows returns the visible window height.
func (s *State) Rows() int {
	return s.rows
}

// Next advances the selection with wraparound.
func (s *State) Next() {
	s.Cursor.Next(len(s.Items), s.rows)
}

// Prev retreats the selection with wraparound.
func (s *State) Prev() {
	s.Cursor.Prev(len(s.Items), s.rows)
}

// SelectedIndex returns the current selection index.
func (s *State) SelectedIndex() int {
	return s.Cursor.Pos()
}

// Selected returns the currently selected item, or "" when empty.
func (s *State) Selected() string {
	if len(s.Items) == 0 {
		return ""
	}
	return s.Items[s.Cursor.Pos()]
}

// IsBackSelected reports whether the selection sits on the trailing Back
// entry. The last index is always Back, whatever the menu holds, and this
// is checked before any menu-specific dispatch.
func (s *State) IsBackSelected() bool {
	return len(s.Items) > 0 && s.Cursor.Pos() == len(s.Items)-1
}

// VisibleRange returns the [start, end) item indices currently in view.
func (s *State) VisibleRange() (start, end int) {
	return s.Cursor.VisibleRange(len(s.Items), s.rows)
}
