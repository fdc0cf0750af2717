package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/minipod/internal/tags"
)

// ScanStats holds statistics for a completed rebuild.
type ScanStats struct {
	Scanned    int   // files considered
	Added      int   // tracks written to the store
	TotalBytes int64 // total size of added tracks
}

// Summary returns a one-line human-readable report.
func (s ScanStats) Summary() string {
	return fmt.Sprintf("%d tracks (%s) from %d files",
		s.Added, humanize.Bytes(uint64(s.TotalBytes)), s.Scanned)
}

// Regenerate scans musicDir for music files, extracts metadata and writes
// a fresh store to storePath. Tag extraction comes first; when it yields
// nothing usable the filename heuristic fills in title and artist.
// The walk checks ctx between files so a long scan can be cancelled (and,
// on cooperative hosts, yields control at the same points).
func Regenerate(ctx context.Context, musicDir, storePath string) (*Catalog, ScanStats, error) {
	var stats ScanStats
	var trks []Track

	err := filepath.WalkDir(musicDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == musicDir {
				// Unusable music directory is fatal
				return err
			}
			// Unreadable entries below the root are skipped
			return nil //nolint:nilerr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !tags.IsMusicFile(path) {
			return nil
		}

		stats.Scanned++

		track := trackFromFile(path)
		if info, statErr := d.Info(); statErr == nil {
			stats.TotalBytes += info.Size()
		}

		trks = append(trks, track)
		stats.Added++
		return nil
	})
	if err != nil {
		return Empty(), stats, &StorageError{Path: musicDir, Err: err}
	}

	// Stable order regardless of filesystem iteration quirks
	sort.Slice(trks, func(i, j int) bool { return trks[i].Filename < trks[j].Filename })

	c := New(trks)
	if err := Save(storePath, c); err != nil {
		return c, stats, err
	}
	return c, stats, nil
}

// trackFromFile builds a track from embedded tags, falling back to the
// filename heuristic for missing fields.
func trackFromFile(path string) Track {
	track := Track{
		Filename: path,
		Duration: fallbackDuration,
	}

	if info, err := tags.ReadWithAudio(path); err == nil {
		track.Title = info.Title
		track.Artist = info.Artist
		track.Album = info.Album
		if info.Duration > 0 {
			track.Duration = info.Duration
		}
	} else if t, err := tags.Read(path); err == nil {
		track.Title = t.Title
		track.Artist = t.Artist
		track.Album = t.Album
	}

	// dhowden falls back to the raw filename as title; treat that as
	// "no tag" so the heuristic gets a chance
	if track.Title == filepath.Base(path) {
		track.Title = ""
	}

	if track.Title == "" || track.Artist == "" {
		title, artist := SplitFilename(path)
		if track.Title == "" {
			track.Title = title
		}
		if track.Artist == "" {
			track.Artist = artist
		}
	}
	if track.Album == "" {
		track.Album = "Unknown Album"
	}

	return track
}

// SplitFilename derives (title, artist) from a filename. If the cleaned
// name contains " - ", the left segment is the artist and the right the
// title; otherwise the whole name is the title and the artist is unknown.
func SplitFilename(path string) (title, artist string) {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	if before, after, found := strings.Cut(name, " - "); found {
		return strings.TrimSpace(after), strings.TrimSpace(before)
	}
	return name, "Unknown Artist"
}
