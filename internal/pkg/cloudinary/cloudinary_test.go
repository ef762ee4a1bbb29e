package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL_DefaultTransform(t *testing.T) {
	b := NewBuilder("demo")

	got := b.URL("weddings/jane-john/001.jpg", TransformOptions{})
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/q_auto,f_auto,w_1200,c_fill/weddings/jane-john/001.jpg", got)
}

func TestURL_WithHeight(t *testing.T) {
	b := NewBuilder("demo")

	got := b.URL("a/1.jpg", TransformOptions{Width: 400, Height: 300})
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/q_auto,f_auto,w_400,h_300,c_fill/a/1.jpg", got)
}

func TestURL_AbsolutePassthrough(t *testing.T) {
	b := NewBuilder("demo")

	url := "https://example.com/direct.jpg"
	assert.Equal(t, url, b.URL(url, TransformOptions{Width: 400}))
	assert.Equal(t, url, b.Original(url))
}

func TestURL_Empty(t *testing.T) {
	b := NewBuilder("demo")
	assert.Equal(t, "", b.URL("", TransformOptions{}))
	assert.Equal(t, "", b.Original(""))
}

func TestCleanPath_StripsUploadPrefix(t *testing.T) {
	b := NewBuilder("demo")

	got := b.Original("/v123/image/upload/weddings/x.jpg")
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/weddings/x.jpg", got)
}

func TestPresets(t *testing.T) {
	b := NewBuilder("demo")

	assert.Contains(t, b.Thumbnail("a/1.jpg"), "w_400")
	assert.Contains(t, b.Preview("a/1.jpg"), "w_800")
	assert.Contains(t, b.FullSize("a/1.jpg"), "w_1600")
	assert.Contains(t, b.FullSize("a/1.jpg"), "c_limit")
}
