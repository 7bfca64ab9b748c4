package api

import (
	"sync"
	"time"
)

// RateLimiter keeps a sliding log of request timestamps. It is advisory only:
// it stops the client from hammering the backend, nothing more.
type RateLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	stamps []time.Time
	stop   chan struct{}
	once   sync.Once
}

func NewRateLimiter(maxPerMinute int) *RateLimiter {
	rl := &RateLimiter{
		max:    maxPerMinute,
		window: time.Minute,
		stop:   make(chan struct{}),
	}
	go rl.pruneLoop()
	return rl
}

// Allow records one request and reports whether the per-minute budget still holds.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.stamps = append(rl.stamps, now)
	rl.prune(now)

	return len(rl.stamps) <= rl.max
}

func (rl *RateLimiter) prune(now time.Time) {
	cutoff := now.Add(-rl.window)
	kept := rl.stamps[:0]
	for _, t := range rl.stamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	rl.stamps = kept
}

func (rl *RateLimiter) pruneLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			rl.mu.Lock()
			rl.prune(now)
			rl.mu.Unlock()
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}
