package transport

import "time"

// Mock is a test double with a simulated playback clock.
type Mock struct {
	open     bool
	paused   bool
	decoding bool
	elapsed  time.Duration
	duration time.Duration

	openErr    error
	openCalls  []string
	closeCalls int
	seekCalls  int
}

// NewMock creates a mock transport whose sessions last the given duration.
func NewMock(duration time.Duration) *Mock {
	return &Mock{duration: duration}
}

func (m *Mock) Open(path string) error {
	if m.open {
		m.Close()
	}
	m.openCalls = append(m.openCalls, path)
	if m.openErr != nil {
		return m.openErr
	}
	m.open = true
	m.elapsed = 0
	return nil
}

func (m *Mock) BeginDecode() {
	if m.open {
		m.decoding = true
	}
}

func (m *Mock) CopyChunk() bool {
	if !m.open || !m.decoding {
		return false
	}
	return m.elapsed < m.duration
}

func (m *Mock) Pause() { m.paused = true }

func (m *Mock) Resume() { m.paused = false }

func (m *Mock) SeekToStart() {
	m.seekCalls++
	m.elapsed = 0
}

func (m *Mock) Close() {
	if !m.open {
		return
	}
	m.closeCalls++
	m.open = false
	m.decoding = false
	m.paused = false
	m.elapsed = 0
}

func (m *Mock) Elapsed() time.Duration { return m.elapsed }

func (m *Mock) Duration() time.Duration {
	if !m.open {
		return 0
	}
	return m.duration
}

// Test helpers

// Advance moves the simulated clock forward while playing.
func (m *Mock) Advance(d time.Duration) {
	if m.open && m.decoding && !m.paused {
		m.elapsed += d
	}
}

// FinishTrack jumps the clock to the end of the stream.
func (m *Mock) FinishTrack() {
	if m.open {
		m.elapsed = m.duration
	}
}

func (m *Mock) SetOpenError(err error) { m.openErr = err }

func (m *Mock) IsOpen() bool { return m.open }

func (m *Mock) IsPaused() bool { return m.paused }

func (m *Mock) OpenCalls() []string { return m.openCalls }

func (m *Mock) CloseCalls() int { return m.closeCalls }

func (m *Mock) SeekCalls() int { return m.seekCalls }
