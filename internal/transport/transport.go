// Package transport abstracts the audio decode and output path: opening a
// file, pumping decoded audio to the sink, and reporting progress.
package transport

import "time"

// Transport is the playback session contract. At most one session is open
// at a time; Open on a live session closes it first.
type Transport interface {
	// Open prepares a decode session for the file at path.
	Open(path string) error
	// BeginDecode starts feeding the audio sink.
	BeginDecode()
	// CopyChunk services the decode path for one loop iteration. It
	// returns false once the stream has ended. It must be called every
	// iteration while playing; it never blocks.
	CopyChunk() bool
	// Pause suspends output without closing the session.
	Pause()
	// Resume continues output after Pause.
	Resume()
	// SeekToStart rewinds the open session to the beginning.
	SeekToStart()
	// Close tears down the session and releases the file and sink.
	Close()
	// Elapsed returns the playback position of the open session.
	Elapsed() time.Duration
	// Duration returns the total length of the open session.
	Duration() time.Duration
}

// Verify implementations at compile time.
var (
	_ Transport = (*Beep)(nil)
	_ Transport = (*Mock)(nil)
)
