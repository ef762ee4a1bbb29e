package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evermore/internal/domain"
	"evermore/internal/modules/session"
	"evermore/internal/pkg/kvstore"
	"evermore/internal/pkg/token"
)

func newSessionRouter(t *testing.T) (*gin.Engine, *session.Store, *domain.ClientGallery) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewStore(kvstore.NewMemory(), token.New("test-secret", time.Hour), time.Hour)
	gallery := &domain.ClientGallery{
		ID:          "g-1",
		GallerySlug: "jane-john-wedding",
		ClientEmail: "jane@example.com",
	}

	router := gin.New()
	protected := router.Group("/client/galleries/:id")
	protected.Use(GallerySession(store))
	protected.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"gallery_id":   c.GetString("gallery_id"),
			"client_email": c.GetString("client_email"),
		})
	})

	return router, store, gallery
}

func TestGallerySession_ValidToken(t *testing.T) {
	router, store, gallery := newSessionRouter(t)

	_, signed, err := store.Create(gallery, "LOVE2025")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/client/galleries/g-1/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jane@example.com")
}

func TestGallerySession_MissingHeader(t *testing.T) {
	router, _, _ := newSessionRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/client/galleries/g-1/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_MISSING")
}

func TestGallerySession_GarbageToken(t *testing.T) {
	router, _, _ := newSessionRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/client/galleries/g-1/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_EXPIRED")
}

func TestGallerySession_WrongGallery(t *testing.T) {
	router, store, gallery := newSessionRouter(t)

	_, signed, err := store.Create(gallery, "LOVE2025")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/client/galleries/g-2/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestGallerySession_ClearedSession(t *testing.T) {
	router, store, gallery := newSessionRouter(t)

	sess, signed, err := store.Create(gallery, "LOVE2025")
	require.NoError(t, err)
	store.Clear(sess.ID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/client/galleries/g-1/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(AdminToken("secret-admin-token", slog.Default()))
	router.GET("/admin/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer secret-admin-token")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/admin/ping", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
