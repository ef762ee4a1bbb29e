package gallery

// Cursor tracks the current position inside the lightbox image sequence.
// Navigation wraps at both ends so next from the last image lands on the
// first and previous from the first lands on the last.
type Cursor struct {
	index int
	size  int
}

func NewCursor(size, start int) Cursor {
	c := Cursor{size: size}
	if size <= 0 {
		return c
	}
	if start >= 0 && start < size {
		c.index = start
	}
	return c
}

func (c Cursor) Index() int { return c.index }
func (c Cursor) Size() int  { return c.size }

// Next advances one position, wrapping past the end.
func (c Cursor) Next() Cursor {
	if c.size <= 1 {
		return c
	}
	c.index = (c.index + 1) % c.size
	return c
}

// Prev steps back one position, wrapping before the start.
func (c Cursor) Prev() Cursor {
	if c.size <= 1 {
		return c
	}
	c.index = (c.index - 1 + c.size) % c.size
	return c
}

// Resize adjusts the cursor after the sequence changed length, clamping the
// index into the new range.
func (c Cursor) Resize(size int) Cursor {
	c.size = size
	if size <= 0 {
		c.index = 0
		c.size = 0
		return c
	}
	if c.index >= size {
		c.index = size - 1
	}
	return c
}
