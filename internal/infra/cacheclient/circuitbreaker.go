package cacheclient

import (
	"sync"
	"time"
)

// breakerState 表示客户端当前对服务端的判定。
type breakerState string

const (
	stateHealthy  breakerState = "healthy"
	stateDegraded breakerState = "degraded"
	stateClosed   breakerState = "closed"
)

// circuitBreaker 连续失败达到阈值后快速失败，冷却期过后重新放行。
type circuitBreaker struct {
	threshold int
	cooldown  time.Duration

	mu         sync.Mutex
	state      breakerState
	failures   int
	lastChange time.Time
}

func newCircuitBreaker(threshold int, cooldown time.Duration) *circuitBreaker {
	return &circuitBreaker{
		threshold:  threshold,
		cooldown:   cooldown,
		state:      stateHealthy,
		lastChange: time.Now(),
	}
}

func (cb *circuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	switch cb.state {
	case stateClosed:
		return false
	case stateDegraded:
		if time.Since(cb.lastChange) <= cb.cooldown {
			return false
		}
		cb.state = stateHealthy
		cb.failures = 0
		cb.lastChange = time.Now()
	}
	return true
}

func (cb *circuitBreaker) Success() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failures = 0
	if cb.state == stateDegraded {
		cb.state = stateHealthy
		cb.lastChange = time.Now()
	}
}

func (cb *circuitBreaker) Failure() (tripped bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failures++
	if cb.failures >= cb.threshold && cb.state == stateHealthy {
		cb.state = stateDegraded
		cb.lastChange = time.Now()
		return true
	}
	return false
}

func (cb *circuitBreaker) Close() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.state = stateClosed
	cb.lastChange = time.Now()
}

func (cb *circuitBreaker) State() breakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
