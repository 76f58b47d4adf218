package service

import (
	"math/rand"
	"time"
)

// Backoff grows as Min * Factor^(attempt-1), capped at Max.
type Backoff struct {
	Min    time.Duration
	Max    time.Duration
	Factor float64
	Jitter bool
}

func NewBackoff(min, max time.Duration, factor float64) *Backoff {
	return &Backoff{
		Min:    min,
		Max:    max,
		Factor: factor,
	}
}

func (b *Backoff) Duration(attempt int) time.Duration {
	if attempt <= 0 {
		return b.Min
	}

	duration := float64(b.Min) * pow(b.Factor, attempt-1)
	if duration > float64(b.Max) {
		duration = float64(b.Max)
	}

	if b.Jitter {
		duration = duration * (0.5 + rand.Float64()*0.5)
	}

	return time.Duration(duration)
}

func pow(base float64, exp int) float64 {
	result := 1.0
	for range exp {
		result *= base
	}
	return result
}

// RetryPolicy is applied by the queue runtime around every handler call.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     *Backoff
}

func NewRetryPolicy(maxAttempts int, initial time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff:     NewBackoff(initial, time.Hour, 2.0),
	}
}

func DefaultRetryPolicy() RetryPolicy {
	return NewRetryPolicy(3, 3*time.Second)
}

// ShouldRetry reports whether a task whose attempt-th attempt just failed gets
// another one, and after which delay. maxAttempts <= 0 uses the policy limit.
func (p RetryPolicy) ShouldRetry(attempt, maxAttempts int) (time.Duration, bool) {
	if maxAttempts <= 0 {
		maxAttempts = p.MaxAttempts
	}
	if attempt >= maxAttempts {
		return 0, false
	}
	return p.Backoff.Duration(attempt), true
}
