package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

type window struct {
	hits    int
	resetAt time.Time
}

// limiter counts requests per client IP in fixed windows. Expired windows
// are swept lazily while the lock is already held.
type limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	per     time.Duration
	sweeps  int
}

func (l *limiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweeps++
	if l.sweeps%512 == 0 {
		for k, w := range l.windows {
			if now.After(w.resetAt) {
				delete(l.windows, k)
			}
		}
	}

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		l.windows[key] = &window{hits: 1, resetAt: now.Add(l.per)}
		return true
	}
	if w.hits >= l.limit {
		return false
	}
	w.hits++
	return true
}

// RateLimit rejects clients exceeding limit requests per window with a 429.
// A non-positive limit disables the middleware.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	l := &limiter{windows: make(map[string]*window), limit: limit, per: per}
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(ClientIP(r), time.Now()) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", formatSeconds(per))
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"code":"rate_limited","message":"too many requests"}}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func formatSeconds(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
