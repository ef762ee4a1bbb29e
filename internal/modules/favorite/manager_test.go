package favorite

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is a thread-safe in-memory stand-in for the database table.
type fakeRepo struct {
	mu     sync.Mutex
	rows   map[string]struct{}
	addErr error
	adds   int
	rms    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]struct{})}
}

func (f *fakeRepo) rowKey(g, e, i string) string { return g + "|" + e + "|" + i }

func (f *fakeRepo) Add(_ context.Context, g, e, i string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adds++
	if f.addErr != nil {
		return f.addErr
	}
	f.rows[f.rowKey(g, e, i)] = struct{}{}
	return nil
}

func (f *fakeRepo) Remove(_ context.Context, g, e, i string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rms++
	delete(f.rows, f.rowKey(g, e, i))
	return nil
}

func (f *fakeRepo) ListImageIDs(_ context.Context, g, e string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	prefix := g + "|" + e + "|"
	for k := range f.rows {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			ids = append(ids, k[len(prefix):])
		}
	}
	return ids, nil
}

func (f *fakeRepo) Exists(_ context.Context, g, e, i string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[f.rowKey(g, e, i)]
	return ok, nil
}

func (f *fakeRepo) has(g, e, i string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[f.rowKey(g, e, i)]
	return ok
}

func TestToggle_AddsThenRemoves(t *testing.T) {
	repo := newFakeRepo()
	m := NewManager(repo, slog.Default())
	ctx := context.Background()

	on, err := m.Toggle(ctx, "g-1", "jane@example.com", "weddings/042")
	require.NoError(t, err)
	assert.True(t, on)

	require.Eventually(t, func() bool {
		return repo.has("g-1", "jane@example.com", "weddings/042")
	}, time.Second, 10*time.Millisecond)

	off, err := m.Toggle(ctx, "g-1", "jane@example.com", "weddings/042")
	require.NoError(t, err)
	assert.False(t, off)

	require.Eventually(t, func() bool {
		return !repo.has("g-1", "jane@example.com", "weddings/042")
	}, time.Second, 10*time.Millisecond)
}

func TestToggle_DoubleToggleLeavesNoFavorite(t *testing.T) {
	repo := newFakeRepo()
	m := NewManager(repo, slog.Default())
	ctx := context.Background()

	_, err := m.Toggle(ctx, "g-1", "jane@example.com", "weddings/007")
	require.NoError(t, err)
	_, err = m.Toggle(ctx, "g-1", "jane@example.com", "weddings/007")
	require.NoError(t, err)

	ids, err := m.List(ctx, "g-1", "jane@example.com")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggle_SyncFailureKeepsLocalState(t *testing.T) {
	repo := newFakeRepo()
	repo.addErr = errors.New("connection refused")
	m := NewManager(repo, slog.Default())
	ctx := context.Background()

	on, err := m.Toggle(ctx, "g-1", "jane@example.com", "weddings/042")
	require.NoError(t, err)
	assert.True(t, on)

	// The write failed but the local set still reports the image as liked.
	ids, err := m.List(ctx, "g-1", "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"weddings/042"}, ids)
}

func TestList_LoadsFromRepositoryOnFirstTouch(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, repo.Add(context.Background(), "g-1", "jane@example.com", "b"))
	require.NoError(t, repo.Add(context.Background(), "g-1", "jane@example.com", "a"))

	m := NewManager(repo, slog.Default())

	ids, err := m.List(context.Background(), "g-1", "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestFavorites_IsolatedPerClient(t *testing.T) {
	repo := newFakeRepo()
	m := NewManager(repo, slog.Default())
	ctx := context.Background()

	_, err := m.Toggle(ctx, "g-1", "jane@example.com", "x")
	require.NoError(t, err)

	other, err := m.List(ctx, "g-1", "guest@example.com")
	require.NoError(t, err)
	assert.Empty(t, other)

	n, err := m.Count(ctx, "g-1", "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestForget_ReloadsFromRepository(t *testing.T) {
	repo := newFakeRepo()
	m := NewManager(repo, slog.Default())
	ctx := context.Background()

	repo.addErr = errors.New("connection refused")
	_, err := m.Toggle(ctx, "g-1", "jane@example.com", "x")
	require.NoError(t, err)

	m.Forget("g-1", "jane@example.com")

	// The failed write never reached the repository, so after a reload the
	// favorite is gone.
	ids, err := m.List(ctx, "g-1", "jane@example.com")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
