package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdatheek136/branfern/config"
)

// emptyContentStore answers every query with a null result.
func emptyContentStore(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":null}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	mr := miniredis.RunT(t)
	return &config.Config{
		Server: config.ServerConfig{Port: "0", AllowedOrigins: []string{"http://localhost:5173"}},
		Sanity: config.SanityConfig{
			ProjectID:  "proj",
			Dataset:    "production",
			APIVersion: "2024-01-01",
			APIHost:    emptyContentStore(t).URL,
		},
		Redis:   config.RedisConfig{Addr: mr.Addr()},
		App:     config.AppConfig{Environment: "test", Version: "test", BaseURL: "https://branfern.com"},
		Booking: config.BookingConfig{RatePerMinute: 5},
		Sitemap: config.SitemapConfig{Schedule: "0 */30 * * * *"},
	}
}

func TestApp_ServesDefaultsWhenContentIsEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := NewApp(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer app.Close()
	r := app.Router()

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("home page", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/pages/home", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
	})

	t.Run("unknown case study", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/work/missing", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("sitemap", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "https://branfern.com/work"))
	})

	t.Run("ui state", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ui/state", bytes.NewBufferString(`{"path":"/"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("submit without write token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/brand-review/drafts", nil))
		require.Equal(t, http.StatusCreated, w.Code)

		var created struct {
			Draft struct {
				ID string `json:"id"`
			} `json:"draft"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		require.NotEmpty(t, created.Draft.ID)
		assert.False(t, app.Writer.HasToken())
	})
}

func TestApp_FailsWithoutRedis(t *testing.T) {
	cfg := testConfig(t)
	cfg.Redis.Addr = ""
	_, err := NewApp(context.Background(), cfg)
	assert.Error(t, err)
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)

	cfg := corsConfig([]string{"https://branfern.com"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://branfern.com"}, cfg.AllowOrigins)
}
