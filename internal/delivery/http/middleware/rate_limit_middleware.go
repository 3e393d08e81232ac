package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"clinica-api/pkg/response"

	"golang.org/x/time/rate"
)

const limiterIdleTTL = 15 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles each client IP to a fixed number of requests
// per minute using a token bucket that allows a full minute's burst.
type RateLimitMiddleware struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	perMinute int
	now       func() time.Time
}

func NewRateLimitMiddleware(perMinute int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		entries:   make(map[string]*limiterEntry),
		perMinute: perMinute,
		now:       time.Now,
	}
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.perMinute <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		limiter := m.limiterFor(clientIP(r))
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(m.perMinute))
		if !limiter.AllowN(m.now(), 1) {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("Retry-After", "60")
			response.TooManyRequests(w)
			return
		}
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(limiter.TokensAt(m.now()))))

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) limiterFor(key string) *rate.Limiter {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if ent, ok := m.entries[key]; ok {
		ent.lastSeen = now
		return ent.limiter
	}

	m.sweep(now)
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.perMinute)), m.perMinute)
	m.entries[key] = &limiterEntry{limiter: limiter, lastSeen: now}
	return limiter
}

// sweep drops idle clients. Caller holds mu.
func (m *RateLimitMiddleware) sweep(now time.Time) {
	cutoff := now.Add(-limiterIdleTTL)
	for key, ent := range m.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(m.entries, key)
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
