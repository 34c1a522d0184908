package contact

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles submissions per client address. Clients idle for longer
// than it takes their bucket to refill are forgotten.
type Limiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	clients   map[string]*clientLimiter
	now       func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter allows perMinute submissions per client, with bursts of the
// same size. A non-positive perMinute disables throttling.
func NewLimiter(perMinute int) *Limiter {
	l := &Limiter{
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
	if perMinute > 0 {
		l.limit = rate.Every(time.Minute / time.Duration(perMinute))
		l.burst = perMinute
		// A bucket is full again after one minute; an entry idle that long
		// behaves exactly like a fresh one.
		l.idle = time.Minute
	} else {
		l.limit = rate.Inf
	}
	return l
}

// Allow reports whether client may submit now.
func (l *Limiter) Allow(client string) bool {
	if l == nil || l.limit == rate.Inf {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}

	c, ok := l.clients[client]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[client] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// sweep drops clients not seen within the idle window. Callers hold l.mu.
func (l *Limiter) sweep(now time.Time) {
	for k, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.idle {
			delete(l.clients, k)
		}
	}
	l.lastSweep = now
}

// Len returns the number of tracked clients.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
