package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// StorageError wraps failures to read or parse the metadata store.
// Callers degrade to an empty catalog instead of halting.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("catalog store %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// storeDoc is the persisted metadata store layout: one array of tracks.
type storeDoc struct {
	Tracks []storeTrack `json:"tracks"`
}

type storeTrack struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	AlbumArt string `json:"albumArt"`
	Duration int    `json:"duration,omitempty"` // seconds
}

// Load reads the metadata store into a catalog. A missing or malformed
// store returns an empty catalog alongside a *StorageError so the caller
// can show the empty state without crashing.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Empty(), &StorageError{Path: path, Err: err}
	}

	var doc storeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return Empty(), &StorageError{Path: path, Err: err}
	}

	tracks := make([]Track, 0, len(doc.Tracks))
	for _, st := range doc.Tracks {
		dur := time.Duration(st.Duration) * time.Second
		if dur <= 0 {
			dur = fallbackDuration
		}
		tracks = append(tracks, Track{
			Filename: st.Filename,
			Title:    st.Title,
			Artist:   st.Artist,
			Album:    st.Album,
			AlbumArt: st.AlbumArt,
			Duration: dur,
		})
	}

	return New(tracks), nil
}

// Save writes the catalog back to the metadata store.
func Save(path string, c *Catalog) error {
	doc := storeDoc{Tracks: make([]storeTrack, 0, c.Len())}
	for _, t := range c.Tracks() {
		doc.Tracks = append(doc.Tracks, storeTrack{
			Filename: t.Filename,
			Title:    t.Title,
			Artist:   t.Artist,
			Album:    t.Album,
			AlbumArt: t.AlbumArt,
			Duration: int(t.Duration / time.Second),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	// Write via temp file so a crash mid-write never corrupts the store
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
