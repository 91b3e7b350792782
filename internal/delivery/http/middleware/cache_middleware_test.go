package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/infrastructure/cache"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type memoryCache struct {
	entries map[string][]byte
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, ok := c.entries[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return value, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.sets++
	c.entries[key] = append([]byte(nil), value...)
	return nil
}

type fixedVersion struct{ version string }

func (v *fixedVersion) Version() string { return v.version }

func countingHandler(calls *int, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(`{"success":true}`))
	})
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestCacheMiddleware_HitAfterMiss(t *testing.T) {
	log, _ := test.NewNullLogger()
	calls := 0
	m := middleware.NewCacheMiddleware(newMemoryCache(), &fixedVersion{"v1"}, time.Minute, log)
	h := m.Handle(countingHandler(&calls, http.StatusOK))

	first := get(h, "/api/v1/doctors?sort=fees")
	second := get(h, "/api/v1/doctors?sort=fees")

	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, `{"success":true}`, second.Body.String())
	assert.Equal(t, 1, calls)

	get(h, "/api/v1/doctors?sort=experience")
	assert.Equal(t, 2, calls)
}

func TestCacheMiddleware_NewVersionMisses(t *testing.T) {
	log, _ := test.NewNullLogger()
	calls := 0
	version := &fixedVersion{"v1"}
	m := middleware.NewCacheMiddleware(newMemoryCache(), version, time.Minute, log)
	h := m.Handle(countingHandler(&calls, http.StatusOK))

	get(h, "/api/v1/specialties")
	version.version = "v2"
	w := get(h, "/api/v1/specialties")

	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Equal(t, 2, calls)
}

func TestCacheMiddleware_SkipsUnloadedAndErrors(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := newMemoryCache()
	calls := 0

	unloaded := middleware.NewCacheMiddleware(store, &fixedVersion{""}, time.Minute, log).
		Handle(countingHandler(&calls, http.StatusOK))
	get(unloaded, "/api/v1/doctors")
	get(unloaded, "/api/v1/doctors")
	assert.Equal(t, 2, calls)

	failing := middleware.NewCacheMiddleware(store, &fixedVersion{"v1"}, time.Minute, log).
		Handle(countingHandler(&calls, http.StatusServiceUnavailable))
	get(failing, "/api/v1/doctors")
	assert.Zero(t, store.sets)
}

func TestCacheMiddleware_PassesThroughNonGet(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := newMemoryCache()
	calls := 0
	h := middleware.NewCacheMiddleware(store, &fixedVersion{"v1"}, time.Minute, log).
		Handle(countingHandler(&calls, http.StatusOK))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/directory/reload", nil))

	assert.Empty(t, w.Header().Get("X-Cache"))
	assert.Zero(t, store.sets)
}
