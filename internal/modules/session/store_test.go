package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evermore/internal/domain"
	"evermore/internal/pkg/kvstore"
	"evermore/internal/pkg/token"
)

func testGallery() *domain.ClientGallery {
	return &domain.ClientGallery{
		ID:          "g-1",
		GallerySlug: "jane-john-wedding",
		ClientEmail: "jane@example.com",
	}
}

func newTestStore(now *time.Time) *Store {
	kv := kvstore.NewMemoryWithClock(func() time.Time { return *now })
	st := NewStore(kv, token.New("test-secret", 2*time.Hour), 2*time.Hour)
	st.now = func() time.Time { return *now }
	return st
}

func TestStore_CreateAndRead(t *testing.T) {
	now := time.Now()
	st := newTestStore(&now)

	sess, signed, err := st.Create(testGallery(), "  love2025 ")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	assert.Equal(t, "g-1", sess.GalleryID)
	assert.Equal(t, "LOVE2025", sess.Code)
	assert.Equal(t, sess.AccessedAt.Add(2*time.Hour), sess.ExpiresAt)

	got := st.Read(sess.ID)
	require.NotNil(t, got)
	assert.Equal(t, sess.GalleryID, got.GalleryID)
	assert.Equal(t, sess.ClientEmail, got.ClientEmail)
}

func TestStore_ReadExpiredClearsSession(t *testing.T) {
	now := time.Now()
	st := newTestStore(&now)

	sess, _, err := st.Create(testGallery(), "LOVE2025")
	require.NoError(t, err)

	now = now.Add(2*time.Hour + time.Minute)
	assert.Nil(t, st.Read(sess.ID))

	// Cleared on read: even rolling the clock back does not revive it.
	now = now.Add(-time.Hour)
	assert.Nil(t, st.Read(sess.ID))
}

func TestStore_Clear(t *testing.T) {
	now := time.Now()
	st := newTestStore(&now)

	sess, _, err := st.Create(testGallery(), "LOVE2025")
	require.NoError(t, err)

	st.Clear(sess.ID)
	assert.Nil(t, st.Read(sess.ID))
}

func TestStore_ValidateToken(t *testing.T) {
	now := time.Now()
	st := newTestStore(&now)

	_, signed, err := st.Create(testGallery(), "LOVE2025")
	require.NoError(t, err)

	sess, err := st.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "g-1", sess.GalleryID)
}

func TestStore_ValidateRejectsGarbageToken(t *testing.T) {
	now := time.Now()
	st := newTestStore(&now)

	_, err := st.Validate("not-a-token")
	assert.Error(t, err)
}

func TestStore_ValidateRejectsClearedSession(t *testing.T) {
	now := time.Now()
	st := newTestStore(&now)

	sess, signed, err := st.Create(testGallery(), "LOVE2025")
	require.NoError(t, err)

	st.Clear(sess.ID)

	_, err = st.Validate(signed)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
