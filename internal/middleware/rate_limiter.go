package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/apierror"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ── Login rate limiter ────────────────────────────────────────────────────────

// ipEntry tracks login attempts per IP within a sliding window.
type ipEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	ipMap   = make(map[string]*ipEntry)
	ipMapMu sync.Mutex
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		ipMapMu.Lock()
		entry, exists := ipMap[ip]
		if !exists {
			entry = &ipEntry{}
			ipMap[ip] = entry
		}
		ipMapMu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			// Reset sliding window
			entry.count = 0
			entry.windowEnd = now.Add(time.Minute)
		}

		entry.count++
		if entry.count > 20 {
			metrics.IncRateLimit("login")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}

// ── General API rate limiter ──────────────────────────────────────────────────

// rateEntry tracks request counts per IP for the general API limiter.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

// RateLimiter returns a general-purpose sliding-window rate limiter. Each
// returned handler owns its own per-IP state, so several limiters with
// different budgets can be mounted on the same request path.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	var (
		entries   = make(map[string]*rateEntry)
		entriesMu sync.Mutex
	)
	go purgeRateEntries(entries, &entriesMu)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		entriesMu.Lock()
		entry, exists := entries[ip]
		if !exists {
			entry = &rateEntry{}
			entries[ip] = entry
		}
		entriesMu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > limit {
			metrics.IncRateLimit("api")
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

// ── Purge goroutines ──────────────────────────────────────────────────────────
// Periodically remove expired entries from the rate limiter maps to prevent
// memory leaks from accumulating IPs that never return.

const purgeInterval = 5 * time.Minute

func init() {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			ipMapMu.Lock()
			purged := 0
			for ip, entry := range ipMap {
				entry.mu.Lock()
				if now.After(entry.windowEnd) {
					delete(ipMap, ip)
					purged++
				}
				entry.mu.Unlock()
			}
			ipMapMu.Unlock()
			if purged > 0 {
				log.Debug().Int("entries_purged", purged).Msg("login rate limiter map purged")
			}
		}
	}()
}

func purgeRateEntries(entries map[string]*rateEntry, mu *sync.Mutex) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		mu.Lock()
		purged := 0
		for ip, entry := range entries {
			entry.mu.Lock()
			if now.After(entry.windowEnd) {
				delete(entries, ip)
				purged++
			}
			entry.mu.Unlock()
		}
		mu.Unlock()
		if purged > 0 {
			log.Debug().Int("entries_purged", purged).Msg("rate limiter map purged")
		}
	}
}
