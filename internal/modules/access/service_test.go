package access

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"evermore/internal/domain"
	"evermore/internal/modules/ratelimit"
	"evermore/internal/modules/session"
	"evermore/internal/pkg/kvstore"
	"evermore/internal/pkg/token"
)

type mockGalleryRepo struct {
	mock.Mock
}

func (m *mockGalleryRepo) FindActiveByCredentials(ctx context.Context, email, slug, code string) (*domain.ClientGallery, error) {
	args := m.Called(ctx, email, slug, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientGallery), args.Error(1)
}

func (m *mockGalleryRepo) GetActiveBySlug(ctx context.Context, slug string) (*domain.ClientGallery, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientGallery), args.Error(1)
}

func (m *mockGalleryRepo) IncrementViewCount(ctx context.Context, id string, accessedAt time.Time) error {
	args := m.Called(ctx, id, accessedAt)
	return args.Error(0)
}

func activeGallery() *domain.ClientGallery {
	return &domain.ClientGallery{
		ID:             "g-1",
		GallerySlug:    "jane-john-wedding",
		ClientEmail:    "jane@example.com",
		BrideName:      "Jane",
		GroomName:      "John",
		AccessCode:     "LOVE2025",
		Images:         []string{"a/1", "a/2", "b/3"},
		ExpirationDate: time.Now().Add(30 * 24 * time.Hour),
		Status:         domain.GalleryActive,
	}
}

func newTestService(repo *mockGalleryRepo) (*Service, *ratelimit.Limiter) {
	limiter := ratelimit.New(kvstore.NewMemory(), 5, 15*time.Minute)
	sessions := session.NewStore(kvstore.NewMemory(), token.New("test-secret", 2*time.Hour), 2*time.Hour)
	svc := NewService(repo, limiter, sessions, slog.Default())
	return svc, limiter
}

// expectViewCount registers the background view-count expectation and returns
// a channel closed when the increment actually runs. The service fires it in
// a goroutine, so tests must wait before asserting on the mock.
func expectViewCount(repo *mockGalleryRepo, galleryID string) <-chan struct{} {
	counted := make(chan struct{})
	repo.On("IncrementViewCount", mock.Anything, galleryID, mock.Anything).
		Return(nil).
		Run(func(mock.Arguments) { close(counted) })
	return counted
}

func waitViewCount(t *testing.T, counted <-chan struct{}) {
	t.Helper()
	select {
	case <-counted:
	case <-time.After(time.Second):
		t.Fatal("view count increment did not run")
	}
}

func TestAuthenticate_SuccessWithLowercaseCode(t *testing.T) {
	repo := new(mockGalleryRepo)
	svc, _ := newTestService(repo)

	gallery := activeGallery()
	repo.On("FindActiveByCredentials", mock.Anything, "", "jane-john-wedding", "LOVE2025").
		Return(gallery, nil)
	counted := expectViewCount(repo, "g-1")

	result, err := svc.Authenticate(context.Background(), AuthenticateRequest{
		Code: "love2025",
		Slug: "jane-john-wedding",
	}, "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, "g-1", result.Session.GalleryID)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, result.Session.AccessedAt.Add(2*time.Hour), result.Session.ExpiresAt)

	waitViewCount(t, counted)
	repo.AssertExpectations(t)
}

func TestAuthenticate_WrongSlugIsInvalidCredentials(t *testing.T) {
	repo := new(mockGalleryRepo)
	svc, limiter := newTestService(repo)

	repo.On("FindActiveByCredentials", mock.Anything, "", "someone-else", "LOVE2025").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Authenticate(context.Background(), AuthenticateRequest{
		Code: "LOVE2025",
		Slug: "someone-else",
	}, "1.2.3.4")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 4, limiter.Remaining("1.2.3.4"))
}

func TestAuthenticate_EmailNormalized(t *testing.T) {
	repo := new(mockGalleryRepo)
	svc, _ := newTestService(repo)

	gallery := activeGallery()
	repo.On("FindActiveByCredentials", mock.Anything, "jane@example.com", "", "LOVE2025").
		Return(gallery, nil)
	counted := expectViewCount(repo, "g-1")

	_, err := svc.Authenticate(context.Background(), AuthenticateRequest{
		Code:  "  love2025 ",
		Email: " Jane@Example.COM ",
	}, "1.2.3.4")

	require.NoError(t, err)
	waitViewCount(t, counted)
}

func TestAuthenticate_MissingIdentifier(t *testing.T) {
	repo := new(mockGalleryRepo)
	svc, _ := newTestService(repo)

	_, err := svc.Authenticate(context.Background(), AuthenticateRequest{Code: "X"}, "1.2.3.4")
	assert.ErrorIs(t, err, ErrMissingIdentifier)
}

func TestAuthenticate_ExpiredGallery(t *testing.T) {
	repo := new(mockGalleryRepo)
	svc, limiter := newTestService(repo)

	gallery := activeGallery()
	gallery.ExpirationDate = time.Now().Add(-24 * time.Hour)
	repo.On("FindActiveByCredentials", mock.Anything, "", "jane-john-wedding", "LOVE2025").
		Return(gallery, nil)

	_, err := svc.Authenticate(context.Background(), AuthenticateRequest{
		Code: "LOVE2025",
		Slug: "jane-john-wedding",
	}, "1.2.3.4")

	assert.ErrorIs(t, err, ErrGalleryExpired)
	// An expired gallery is a real match: no failed attempt is counted.
	assert.Equal(t, 5, limiter.Remaining("1.2.3.4"))
}

func TestAuthenticate_SixthAttemptRefusedWithoutBackendCall(t *testing.T) {
	repo := new(mockGalleryRepo)
	svc, _ := newTestService(repo)

	repo.On("FindActiveByCredentials", mock.Anything, "", "jane-john-wedding", "WRONG").
		Return(nil, gorm.ErrRecordNotFound).Times(5)

	req := AuthenticateRequest{Code: "wrong", Slug: "jane-john-wedding"}
	for i := 0; i < 5; i++ {
		_, err := svc.Authenticate(context.Background(), req, "1.2.3.4")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err := svc.Authenticate(context.Background(), req, "1.2.3.4")
	assert.ErrorIs(t, err, ErrRateLimited)
	// Exactly 5 repo calls: the 6th was refused locally.
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "FindActiveByCredentials", 5)
}

func TestAuthenticate_SuccessResetsCounter(t *testing.T) {
	repo := new(mockGalleryRepo)
	svc, limiter := newTestService(repo)

	repo.On("FindActiveByCredentials", mock.Anything, "", "jane-john-wedding", "WRONG").
		Return(nil, gorm.ErrRecordNotFound).Twice()

	for i := 0; i < 2; i++ {
		_, _ = svc.Authenticate(context.Background(), AuthenticateRequest{
			Code: "wrong", Slug: "jane-john-wedding",
		}, "1.2.3.4")
	}
	assert.Equal(t, 3, limiter.Remaining("1.2.3.4"))

	gallery := activeGallery()
	repo.On("FindActiveByCredentials", mock.Anything, "", "jane-john-wedding", "LOVE2025").
		Return(gallery, nil)
	counted := expectViewCount(repo, "g-1")

	_, err := svc.Authenticate(context.Background(), AuthenticateRequest{
		Code: "LOVE2025", Slug: "jane-john-wedding",
	}, "1.2.3.4")
	require.NoError(t, err)

	assert.Equal(t, 5, limiter.Remaining("1.2.3.4"))
	waitViewCount(t, counted)
}
