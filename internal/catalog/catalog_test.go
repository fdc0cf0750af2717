package catalog

import (
	"testing"
	"time"
)

func TestNew_DerivedLists(t *testing.T) {
	c := New([]Track{
		{Title: "One", Artist: "Alpha", Album: "First"},
		{Title: "Two", Artist: "Beta", Album: "Second"},
		{Title: "Three", Artist: "Alpha", Album: "First"},
		{Title: "Four", Artist: "Gamma", Album: "Second"},
	})

	wantArtists := []string{"Alpha", "Beta", "Gamma"}
	if len(c.Artists()) != len(wantArtists) {
		t.Fatalf("Artists() = %v, want %v", c.Artists(), wantArtists)
	}
	for i, a := range wantArtists {
		if c.Artists()[i] != a {
			t.Errorf("Artists()[%d] = %q, want %q", i, c.Artists()[i], a)
		}
	}

	wantAlbums := []string{"First", "Second"}
	if len(c.Albums()) != len(wantAlbums) {
		t.Fatalf("Albums() = %v, want %v", c.Albums(), wantAlbums)
	}
	for i, a := range wantAlbums {
		if c.Albums()[i] != a {
			t.Errorf("Albums()[%d] = %q, want %q", i, c.Albums()[i], a)
		}
	}
}

func TestNew_SkipsEmptyNames(t *testing.T) {
	c := New([]Track{
		{Title: "One", Artist: "", Album: ""},
		{Title: "Two", Artist: "Alpha", Album: "First"},
	})

	if len(c.Artists()) != 1 || c.Artists()[0] != "Alpha" {
		t.Errorf("Artists() = %v, want [Alpha]", c.Artists())
	}
	if len(c.Albums()) != 1 || c.Albums()[0] != "First" {
		t.Errorf("Albums() = %v, want [First]", c.Albums())
	}
}

func TestCatalog_Track_Bounds(t *testing.T) {
	c := New([]Track{{Title: "One"}})

	if _, ok := c.Track(-1); ok {
		t.Error("Track(-1) should not be ok")
	}
	if _, ok := c.Track(1); ok {
		t.Error("Track(1) should not be ok on a 1-track catalog")
	}
	tr, ok := c.Track(0)
	if !ok || tr.Title != "One" {
		t.Errorf("Track(0) = (%v, %v), want (One, true)", tr.Title, ok)
	}
}

func TestEmpty(t *testing.T) {
	c := Empty()

	if !c.IsEmpty() {
		t.Error("Empty() catalog should be empty")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if _, ok := c.Track(0); ok {
		t.Error("Track(0) on empty catalog should not be ok")
	}
}

func TestNew_PreservesOrderAndDuration(t *testing.T) {
	c := New([]Track{
		{Title: "B", Duration: 200 * time.Second},
		{Title: "A", Duration: 90 * time.Second},
	})

	if c.Tracks()[0].Title != "B" || c.Tracks()[1].Title != "A" {
		t.Errorf("track order not preserved: %v", c.Tracks())
	}
	if c.Tracks()[0].Duration != 200*time.Second {
		t.Errorf("Duration = %v, want 200s", c.Tracks()[0].Duration)
	}
}
