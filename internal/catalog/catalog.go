// Package catalog holds the in-memory music catalog: an ordered track list
// plus derived unique artist and album name lists.
package catalog

import "time"

// fallbackDuration is used when the store carries no usable duration.
const fallbackDuration = 180 * time.Second

// Track describes one playable entry. Tracks are immutable after load.
type Track struct {
	Filename string
	Title    string
	Artist   string
	Album    string
	AlbumArt string
	Duration time.Duration
}

// Catalog is the loaded track list with derived name lists.
// It is rebuilt wholesale on load and never mutated afterwards.
type Catalog struct {
	tracks  []Track
	artists []string
	albums  []string
}

// New builds a catalog from tracks, deriving the unique artist and album
// lists in first-seen order. Linear membership scans are fine at the
// catalog sizes this runs against (tens to low hundreds of tracks).
func New(tracks []Track) *Catalog {
	c := &Catalog{tracks: tracks}
	for _, t := range tracks {
		if t.Artist != "" && !contains(c.artists, t.Artist) {
			c.artists = append(c.artists, t.Artist)
		}
		if t.Album != "" && !contains(c.albums, t.Album) {
			c.albums = append(c.albums, t.Album)
		}
	}
	return c
}

// Empty returns a catalog with no tracks.
func Empty() *Catalog {
	return &Catalog{}
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// IsEmpty returns true if the catalog has no tracks.
func (c *Catalog) IsEmpty() bool {
	return len(c.tracks) == 0
}

// Tracks returns the ordered track list.
func (c *Catalog) Tracks() []Track {
	return c.tracks
}

// Track returns the track at index i and true, or a zero track and false
// when the index is out of range.
func (c *Catalog) Track(i int) (Track, bool) {
	if i < 0 || i >= len(c.tracks) {
		return Track{}, false
	}
	return c.tracks[i], true
}

// Artists returns the unique artist names in first-seen order.
func (c *Catalog) Artists() []string {
	return c.artists
}

// Albums returns the unique album names in first-seen order.
func (c *Catalog) Albums() []string {
	return c.albums
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
