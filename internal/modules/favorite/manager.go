// Package favorite tracks which images a client hearted. The in-process set
// is the source of truth for reads; writes are pushed to the database in the
// background so a toggle never waits on the network.
package favorite

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"evermore/internal/repository"
)

const syncTimeout = 5 * time.Second

// Manager keeps one favorite set per (gallery, client email) pair. Sets are
// loaded from the repository on first touch and then served locally.
type Manager struct {
	repo repository.FavoriteRepository
	log  *slog.Logger

	mu   sync.Mutex
	sets map[string]map[string]struct{}
}

func NewManager(repo repository.FavoriteRepository, log *slog.Logger) *Manager {
	return &Manager{
		repo: repo,
		log:  log,
		sets: make(map[string]map[string]struct{}),
	}
}

// Toggle flips the favorite state of one image and returns the new state.
// The local set is updated before the database write is even started; a
// failed write is logged and the local state stands.
func (m *Manager) Toggle(ctx context.Context, galleryID, clientEmail, imageID string) (bool, error) {
	set, err := m.loadLocked(ctx, galleryID, clientEmail)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	_, had := set[imageID]
	if had {
		delete(set, imageID)
	} else {
		set[imageID] = struct{}{}
	}
	m.mu.Unlock()

	isFavorite := !had

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()

		var err error
		if isFavorite {
			err = m.repo.Add(ctx, galleryID, clientEmail, imageID)
		} else {
			err = m.repo.Remove(ctx, galleryID, clientEmail, imageID)
		}
		if err != nil {
			m.log.Warn("favorite sync failed",
				"gallery_id", galleryID,
				"image_id", imageID,
				"favorite", isFavorite,
				"error", err)
		}
	}()

	return isFavorite, nil
}

// List returns the client's favorited image ids in stable order.
func (m *Manager) List(ctx context.Context, galleryID, clientEmail string) ([]string, error) {
	set, err := m.loadLocked(ctx, galleryID, clientEmail)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	sort.Strings(ids)
	return ids, nil
}

// IsFavorite reports the local state of one image.
func (m *Manager) IsFavorite(ctx context.Context, galleryID, clientEmail, imageID string) (bool, error) {
	set, err := m.loadLocked(ctx, galleryID, clientEmail)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	_, ok := set[imageID]
	m.mu.Unlock()
	return ok, nil
}

// Count returns how many images the client has favorited.
func (m *Manager) Count(ctx context.Context, galleryID, clientEmail string) (int, error) {
	set, err := m.loadLocked(ctx, galleryID, clientEmail)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	n := len(set)
	m.mu.Unlock()
	return n, nil
}

// Forget drops the in-process set so the next read reloads from the database.
func (m *Manager) Forget(galleryID, clientEmail string) {
	m.mu.Lock()
	delete(m.sets, m.key(galleryID, clientEmail))
	m.mu.Unlock()
}

// loadLocked returns the set for the pair, loading it from the repository on
// first touch. The returned map must only be read or written under mu.
func (m *Manager) loadLocked(ctx context.Context, galleryID, clientEmail string) (map[string]struct{}, error) {
	key := m.key(galleryID, clientEmail)

	m.mu.Lock()
	if set, ok := m.sets[key]; ok {
		m.mu.Unlock()
		return set, nil
	}
	m.mu.Unlock()

	ids, err := m.repo.ListImageIDs(ctx, galleryID, clientEmail)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// A concurrent loader may have won; keep its set so toggles are not lost.
	if set, ok := m.sets[key]; ok {
		return set, nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	m.sets[key] = set
	return set, nil
}

func (m *Manager) key(galleryID, clientEmail string) string {
	return galleryID + "|" + clientEmail
}
