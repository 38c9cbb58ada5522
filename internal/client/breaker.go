package client

import (
	"sync"
	"time"
)

// breaker stops hammering an upstream that keeps failing. A threshold of zero
// or less disables it. This is not a retry policy; callers decide when to
// fetch again.
type breaker struct {
	mu        sync.Mutex
	failures  int
	threshold int
	openedAt  time.Time
	cooldown  time.Duration
}

func newBreaker(threshold int, cooldown time.Duration) *breaker {
	return &breaker{threshold: threshold, cooldown: cooldown}
}

func (b *breaker) allow() bool {
	if b.threshold <= 0 {
		return true
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failures < b.threshold {
		return true
	}
	if time.Since(b.openedAt) > b.cooldown {
		b.failures = 0
		b.openedAt = time.Time{}
		return true
	}
	return false
}

func (b *breaker) success() {
	if b.threshold <= 0 {
		return
	}
	b.mu.Lock()
	b.failures = 0
	b.openedAt = time.Time{}
	b.mu.Unlock()
}

func (b *breaker) fail() {
	if b.threshold <= 0 {
		return
	}
	b.mu.Lock()
	b.failures++
	if b.failures >= b.threshold {
		b.openedAt = time.Now()
	}
	b.mu.Unlock()
}
