package state

import (
	"database/sql"
	"errors"
	"time"
)

// Session is one snapshot of where the user was: the active screen, the
// menu position, and the playing track if any. PlayingIndex is -1 when
// nothing was loaded.
type Session struct {
	Screen        string // "home", "menu" or "playing"
	MenuID        string // active menu name, empty on the home screen
	SelectedIndex int
	ScrollOffset  int
	PlayingIndex  int
	ElapsedSecs   int
}

func getSession(db *sql.DB) (*Session, error) {
	row := db.QueryRow(`
		SELECT screen, menu_id, selected_index, scroll_offset, playing_index, elapsed_secs
		FROM session WHERE id = 1
	`)

	var s Session
	var menuID sql.NullString

	err := row.Scan(&s.Screen, &menuID, &s.SelectedIndex, &s.ScrollOffset, &s.PlayingIndex, &s.ElapsedSecs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session is valid on first run
	}
	if err != nil {
		return nil, err
	}

	if menuID.Valid {
		s.MenuID = menuID.String
	}
	return &s, nil
}

func saveSession(db *sql.DB, s Session) error {
	_, err := db.Exec(`
		INSERT INTO session (id, screen, menu_id, selected_index, scroll_offset, playing_index, elapsed_secs, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			screen = excluded.screen,
			menu_id = excluded.menu_id,
			selected_index = excluded.selected_index,
			scroll_offset = excluded.scroll_offset,
			playing_index = excluded.playing_index,
			elapsed_secs = excluded.elapsed_secs,
			updated_at = excluded.updated_at
	`, s.Screen, s.MenuID, s.SelectedIndex, s.ScrollOffset, s.PlayingIndex, s.ElapsedSecs,
		time.Now().Unix())

	return err
}
