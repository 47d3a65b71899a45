package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"kiroua/internal/adapter/upstream/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresHeaderManager(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestNew_DefaultPort(t *testing.T) {
	t.Setenv("GIN_MODE", "test")
	srv, err := New(Options{HeaderManager: shared.NewHeaderManager(shared.Options{})})
	require.NoError(t, err)
	assert.Equal(t, "8080", srv.Port())
}

func TestServer_ProtectsV1WhenTokenSet(t *testing.T) {
	t.Setenv("GIN_MODE", "test")
	srv, err := New(Options{
		Port:          "0",
		ClientToken:   "secret-token",
		HeaderManager: shared.NewHeaderManager(shared.Options{}),
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/identity", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/identity", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
