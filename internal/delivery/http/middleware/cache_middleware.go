package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"doctor-directory/internal/infrastructure/cache"

	"github.com/sirupsen/logrus"
)

// VersionSource reports the version of the data a response was built from.
// An empty version means there is nothing cacheable yet.
type VersionSource interface {
	Version() string
}

// CacheMiddleware serves repeated GET views from a ResponseCache. Keys include
// the directory version, so a reload never serves responses built from the
// previous doctor set.
type CacheMiddleware struct {
	cache   cache.ResponseCache
	version VersionSource
	ttl     time.Duration
	log     *logrus.Logger
}

func NewCacheMiddleware(responseCache cache.ResponseCache, version VersionSource, ttl time.Duration, log *logrus.Logger) *CacheMiddleware {
	return &CacheMiddleware{
		cache:   responseCache,
		version: version,
		ttl:     ttl,
		log:     log,
	}
}

func (m *CacheMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.cache == nil || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		version := m.version.Version()
		if version == "" {
			next.ServeHTTP(w, r)
			return
		}

		key := cacheKey(version, r)
		if cached, err := m.cache.Get(r.Context(), key); err == nil {
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			m.log.Warnf("Failed to read response cache: %+v", err)
		}

		w.Header().Set("X-Cache", "MISS")
		recorder := &bodyRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)

		// A reload may have finished while the handler ran; only store
		// responses that are known to match the version in the key.
		if recorder.statusCode != http.StatusOK || recorder.body.Len() == 0 || m.version.Version() != version {
			return
		}
		if err := m.cache.Set(r.Context(), key, recorder.body.Bytes(), m.ttl); err != nil {
			m.log.Warnf("Failed to write response cache: %+v", err)
		}
	})
}

// cacheKey hashes the version, path and the query string as sent. The list
// endpoint always echoes a canonical query, so clients that reuse it share
// entries.
func cacheKey(version string, r *http.Request) string {
	hash := sha256.Sum256([]byte(version + "|" + r.URL.Path + "?" + r.URL.RawQuery))
	return hex.EncodeToString(hash[:])
}

type bodyRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (r *bodyRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
