package menu

// Cursor manages the selection index and scroll offset of a menu window.
// The list length and window height are passed to methods rather than
// stored, matching how the menus rebuild their item lists.
type Cursor struct {
	pos    int // current selection (0-indexed)
	offset int // scroll offset (first visible item index)
}

// Pos returns the current selection index.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Next advances the selection by one, wrapping past the last index to 0.
// If listLen is 0, this is a no-op.
func (c *Cursor) Next(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = (c.pos + 1) % listLen
	c.ensureVisible(listLen, height)
}

// Prev retreats the selection by one, wrapping from 0 to the last index.
// If listLen is 0, this is a no-op.
func (c *Cursor) Prev(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos--
	if c.pos < 0 {
		c.pos = listLen - 1
	}
	c.ensureVisible(listLen, height)
}

// Reset moves the selection to position 0 and offset 0.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// Set places the cursor at pos, clamped to bounds, with the offset
// adjusted for visibility. Used when restoring a saved session.
func (c *Cursor) Set(pos, listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > listLen-1 {
		pos = listLen - 1
	}
	c.pos = pos
	c.ensureVisible(listLen, height)
}

// VisibleRange returns the range of visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = c.offset
	end = min(c.offset+height, listLen)
	return start, end
}

// ensureVisible adjusts the scroll offset to keep the selection in the
// window: the offset is the smallest value keeping pos visible.
func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	// Selection above the window
	if c.pos < c.offset {
		c.offset = c.pos
	}

	// Selection below the window
	if c.pos >= c.offset+height {
		c.offset = c.pos - height + 1
	}

	// Clamp offset to the last full page
	maxOffset := max(listLen-height, 0)
	if c.offset > maxOffset {
		c.offset = maxOffset
	}
	if c.offset < 0 {
		c.offset = 0
	}
}
