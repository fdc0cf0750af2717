package tags

import "testing"

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/music/song.mp3", true},
		{"/music/song.MP3", true},
		{"/music/song.flac", true},
		{"/music/song.ogg", true},
		{"/music/song.wav", true},
		{"/music/song.m4a", false},
		{"/music/cover.jpg", false},
		{"/music/README", false},
		{"song", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsMusicFile(tt.path); got != tt.want {
				t.Errorf("IsMusicFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseTrackNumber(t *testing.T) {
	tests := []struct {
		input     string
		wantNum   int
		wantTotal int
	}{
		{"", 0, 0},
		{"5", 5, 0},
		{"5/10", 5, 10},
		{"03/12", 3, 12},
		{"abc", 0, 0},
		{"7/", 7, 0},
	}

	for _, tt := range tests {
		num, total := parseTrackNumber(tt.input)
		if num != tt.wantNum || total != tt.wantTotal {
			t.Errorf("parseTrackNumber(%q) = (%d, %d), want (%d, %d)",
				tt.input, num, total, tt.wantNum, tt.wantTotal)
		}
	}
}

func TestYearToDate(t *testing.T) {
	if got := yearToDate(0); got != "" {
		t.Errorf("yearToDate(0) = %q, want empty", got)
	}
	if got := yearToDate(1997); got != "1997" {
		t.Errorf("yearToDate(1997) = %q, want 1997", got)
	}
}
