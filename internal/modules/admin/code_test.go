package admin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := GenerateAccessCode()
		require.NoError(t, err)
		assert.Len(t, code, 8)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected character %q", r)
		}
		seen[code] = struct{}{}
	}
	// 100 draws from a 32^8 space should not collide.
	assert.Len(t, seen, 100)
}

func TestGenerateAccessCode_OmitsLookalikes(t *testing.T) {
	assert.NotContains(t, codeAlphabet, "0")
	assert.NotContains(t, codeAlphabet, "O")
	assert.NotContains(t, codeAlphabet, "1")
	assert.NotContains(t, codeAlphabet, "I")
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "jane-john-wedding", slugify("Jane John wedding"))
	assert.Equal(t, "jane-john", slugify("Jane & John!"))
	assert.Equal(t, "", slugify("&&&"))
}

func TestSlugifyFilename(t *testing.T) {
	assert.Equal(t, "first-kiss.jpg", slugifyFilename("First Kiss.JPG"))
	out := slugifyFilename(".jpg")
	assert.True(t, strings.HasSuffix(out, ".jpg"))
	assert.Greater(t, len(out), 4)
}
