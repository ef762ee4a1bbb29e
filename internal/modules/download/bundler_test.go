package download

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	files map[string][]byte
}

func (f *fakeFetcher) Fetch(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func testItems() []Item {
	return []Item{
		{Path: "ceremony/first-kiss.jpg", Title: "First Kiss"},
		{Path: "ceremony/vows.jpg", Title: "The Vows"},
		{Path: "reception/cake.png"},
	}
}

func testFetcher() *fakeFetcher {
	return &fakeFetcher{files: map[string][]byte{
		"ceremony/first-kiss.jpg": []byte("kiss-bytes"),
		"ceremony/vows.jpg":       []byte("vow-bytes"),
		"reception/cake.png":      []byte("cake-bytes"),
	}}
}

func readEntries(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	out := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		out[f.Name] = content
	}
	return out
}

func TestBundle_EntryNamesAndContent(t *testing.T) {
	b := NewBundler(testFetcher(), 6, slog.Default())

	var buf bytes.Buffer
	skipped, err := b.Bundle(context.Background(), &buf, testItems(), nil)
	require.NoError(t, err)
	assert.Zero(t, skipped)

	entries := readEntries(t, buf.Bytes())
	require.Len(t, entries, 3)
	assert.Equal(t, []byte("kiss-bytes"), entries["0001_first-kiss.jpg"])
	assert.Equal(t, []byte("vow-bytes"), entries["0002_the-vows.jpg"])
	assert.Equal(t, []byte("cake-bytes"), entries["0003_cake.png"])
}

func TestBundle_SkipsUnfetchableImages(t *testing.T) {
	fetcher := testFetcher()
	delete(fetcher.files, "ceremony/vows.jpg")
	b := NewBundler(fetcher, 6, slog.Default())

	var buf bytes.Buffer
	var final Progress
	skipped, err := b.Bundle(context.Background(), &buf, testItems(), func(p Progress) {
		final = p
	})
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)

	entries := readEntries(t, buf.Bytes())
	assert.Len(t, entries, 2)
	assert.NotContains(t, entries, "0002_the-vows.jpg")

	assert.Equal(t, StatusComplete, final.Status)
	assert.Contains(t, final.Message, "2 photos bundled")
	assert.Contains(t, final.Message, "1 skipped")
}

func TestBundle_ProgressSequence(t *testing.T) {
	b := NewBundler(testFetcher(), 6, slog.Default())

	var events []Progress
	var buf bytes.Buffer
	_, err := b.Bundle(context.Background(), &buf, testItems(), func(p Progress) {
		events = append(events, p)
	})
	require.NoError(t, err)

	// Three downloading events, one processing, one complete.
	require.Len(t, events, 5)
	assert.Equal(t, StatusDownloading, events[0].Status)
	assert.Equal(t, 1, events[0].Current)
	assert.Equal(t, 3, events[0].Total)
	assert.Equal(t, StatusDownloading, events[2].Status)
	assert.Equal(t, 90, events[2].Percentage)
	assert.Equal(t, StatusProcessing, events[3].Status)
	assert.Equal(t, StatusComplete, events[4].Status)
	assert.Equal(t, 100, events[4].Percentage)

	last := -1
	for _, e := range events {
		assert.GreaterOrEqual(t, e.Percentage, last)
		last = e.Percentage
	}
}

func TestBundle_AllFailedIsError(t *testing.T) {
	b := NewBundler(&fakeFetcher{files: map[string][]byte{}}, 6, slog.Default())

	var final Progress
	var buf bytes.Buffer
	skipped, err := b.Bundle(context.Background(), &buf, testItems(), func(p Progress) {
		final = p
	})
	assert.Error(t, err)
	assert.Equal(t, 3, skipped)
	assert.Equal(t, StatusError, final.Status)
}

func TestBundle_EmptyListIsError(t *testing.T) {
	b := NewBundler(testFetcher(), 6, slog.Default())

	var buf bytes.Buffer
	_, err := b.Bundle(context.Background(), &buf, nil, nil)
	assert.Error(t, err)
}

func TestBundle_CancelledContext(t *testing.T) {
	b := NewBundler(testFetcher(), 6, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := b.Bundle(ctx, &buf, testItems(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEstimateSize(t *testing.T) {
	assert.Equal(t, int64(0), EstimateSize(0))
	assert.Equal(t, int64(4<<20)*12, EstimateSize(12))
	assert.Equal(t, int64(0), EstimateSize(-1))
}
