package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_WrapsForward(t *testing.T) {
	c := NewCursor(3, 2)
	c = c.Next()
	assert.Equal(t, 0, c.Index())
}

func TestCursor_WrapsBackward(t *testing.T) {
	c := NewCursor(3, 0)
	c = c.Prev()
	assert.Equal(t, 2, c.Index())
}

func TestCursor_SingleImageStaysPut(t *testing.T) {
	c := NewCursor(1, 0)
	assert.Equal(t, 0, c.Next().Index())
	assert.Equal(t, 0, c.Prev().Index())
}

func TestCursor_FullLoopReturnsToStart(t *testing.T) {
	c := NewCursor(5, 3)
	for i := 0; i < 5; i++ {
		c = c.Next()
	}
	assert.Equal(t, 3, c.Index())
}

func TestCursor_InvalidStartFallsBackToZero(t *testing.T) {
	assert.Equal(t, 0, NewCursor(3, 9).Index())
	assert.Equal(t, 0, NewCursor(3, -1).Index())
}

func TestCursor_ResizeClampsIndex(t *testing.T) {
	c := NewCursor(5, 4)
	c = c.Resize(3)
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, 3, c.Size())

	c = c.Resize(0)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0, c.Size())
}
