package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	loginLimit    = 20
	purgeInterval = 5 * time.Minute
)

// ipWindow tracks the requests of one IP inside a fixed window.
type ipWindow struct {
	count     int
	windowEnd time.Time
}

// limiter counts requests per client IP. Expired windows are purged while
// serving requests, at most once per purgeInterval.
type limiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	entries   map[string]*ipWindow
	nextPurge time.Time
	now       func() time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	return &limiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*ipWindow),
		now:     time.Now,
	}
}

// allow records one request for ip and reports whether it is within the
// limit, plus the time the current window closes.
func (l *limiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.After(l.nextPurge) {
		l.purge(now)
		l.nextPurge = now.Add(purgeInterval)
	}

	e, ok := l.entries[ip]
	if !ok || now.After(e.windowEnd) {
		e = &ipWindow{windowEnd: now.Add(l.window)}
		l.entries[ip] = e
	}
	e.count++
	return e.count <= l.limit, e.windowEnd
}

func (l *limiter) purge(now time.Time) {
	purged := 0
	for ip, e := range l.entries {
		if now.After(e.windowEnd) {
			delete(l.entries, ip)
			purged++
		}
	}
	if purged > 0 {
		log.Debug().Int("purged", purged).Int("remaining", len(l.entries)).Msg("rate limiter entries purged")
	}
}

func (l *limiter) middleware(detail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, windowEnd := l.allow(c.ClientIP())
		if !ok {
			retry := int(windowEnd.Sub(l.now()).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(detail))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(loginLimit, time.Minute).middleware("Too many login attempts. Try again in a minute.")
}

// RateLimiter returns a general-purpose per-IP rate limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newLimiter(limit, window).middleware("Too many requests. Try again shortly.")
}
