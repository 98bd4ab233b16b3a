package telegram

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// admissionGuard throttles per-chat traffic: a token-bucket rate limit plus
// a single-in-flight rule so one chat cannot stack pipeline runs.
type admissionGuard struct {
	mu       sync.Mutex
	limiters *expirable.LRU[int64, *rate.Limiter]
	inflight map[int64]bool
	limit    rate.Limit
	burst    int
}

func newAdmissionGuard(perMinute, burst int, ttl time.Duration) *admissionGuard {
	return &admissionGuard{
		limiters: expirable.NewLRU[int64, *rate.Limiter](1024, nil, ttl),
		inflight: make(map[int64]bool),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

// Allow reports whether the chat is inside its rate budget.
func (g *admissionGuard) Allow(chatID int64) bool {
	g.mu.Lock()
	limiter, ok := g.limiters.Get(chatID)
	if !ok {
		limiter = rate.NewLimiter(g.limit, g.burst)
		g.limiters.Add(chatID, limiter)
	}
	g.mu.Unlock()
	return limiter.Allow()
}

// Begin acquires the chat's in-flight slot. Returns false when a previous
// request is still being processed.
func (g *admissionGuard) Begin(chatID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inflight[chatID] {
		return false
	}
	g.inflight[chatID] = true
	return true
}

// End releases the chat's in-flight slot.
func (g *admissionGuard) End(chatID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, chatID)
}
