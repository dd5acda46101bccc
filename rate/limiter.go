// Package rate throttles requests per client address. Every address
// gets its own token bucket, and buckets idle past the expiry window
// are swept away to keep the map bounded.
package rate

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Limiter struct {
	rps    rate.Limit
	burst  int
	expiry time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

func NewLimiter(burst int, expiryMinutes int, rps float64) *Limiter {
	l := &Limiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		expiry:  time.Duration(expiryMinutes) * time.Minute,
		buckets: make(map[string]*bucket),
	}
	go l.sweep()
	return l
}

// Check reports whether the address may proceed, minting a bucket on
// first sight.
func (l *Limiter) Check(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[addr]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.rps, l.burst)}
		l.buckets[addr] = b
	}
	b.seen = time.Now()

	return b.lim.Allow()
}

func (l *Limiter) sweep() {
	for range time.Tick(time.Minute) {
		l.mu.Lock()
		for addr, b := range l.buckets {
			if time.Since(b.seen) > l.expiry {
				delete(l.buckets, addr)
			}
		}
		l.mu.Unlock()
	}
}

func Every(interval time.Duration) float64 {
	return float64(rate.Every(interval))
}
