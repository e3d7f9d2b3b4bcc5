package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/BarberShop-BookingService/internal/api/handlers"
)

const (
	defaultBurst       = 5
	defaultIdleTTL     = 10 * time.Minute
	msgTooManyRequests = "слишком много запросов, попробуйте позже"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter token bucket на каждый IP адрес клиента
// X-Forwarded-For учитывается только от доверенных прокси
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter

	rps            rate.Limit
	burst          int
	idleTTL        time.Duration
	trustedProxies map[string]struct{}
	now            func() time.Time
}

func NewRateLimiter(rps float64, burst int, idleTTL time.Duration, trustedProxies []string) *RateLimiter {
	if burst <= 0 {
		burst = defaultBurst
	}
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}

	trusted := make(map[string]struct{}, len(trustedProxies))
	for _, p := range trustedProxies {
		if p = strings.TrimSpace(p); p != "" {
			trusted[p] = struct{}{}
		}
	}

	return &RateLimiter{
		limiters:       make(map[string]*clientLimiter),
		rps:            rate.Limit(rps),
		burst:          burst,
		idleTTL:        idleTTL,
		trustedProxies: trusted,
		now:            time.Now,
	}
}

func (l *RateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.limiters[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = l.now()

	return entry.limiter.Allow()
}

// Sweep удаляет клиентов, не приходивших дольше idleTTL, возвращает число удалённых
func (l *RateLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.idleTTL)
	removed := 0
	for key, entry := range l.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

// RunSweeper периодически вызывает Sweep до закрытия stopCh
func (l *RateLimiter) RunSweeper(interval time.Duration, stopCh <-chan struct{}) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Sweep()
		case <-stopCh:
			return
		}
	}
}

// Size число отслеживаемых клиентов
func (l *RateLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Middleware отвечает 429, когда клиент исчерпал лимит
func (l *RateLimiter) Middleware(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := l.clientKey(r)
			if !l.allow(key) {
				logger.Warn("RateLimit: client=%s exceeded limit on %s %s", key, r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (l *RateLimiter) clientKey(r *http.Request) string {
	host := remoteHost(r)

	if _, trusted := l.trustedProxies[host]; trusted {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			if client := strings.TrimSpace(strings.Split(forwarded, ",")[0]); client != "" {
				return client
			}
		}
	}

	return host
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
