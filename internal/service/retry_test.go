package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_Duration(t *testing.T) {
	backoff := NewBackoff(100*time.Millisecond, 500*time.Millisecond, 2.0)

	assert.Equal(t, 100*time.Millisecond, backoff.Duration(0))
	assert.Equal(t, 100*time.Millisecond, backoff.Duration(1))
	assert.Equal(t, 200*time.Millisecond, backoff.Duration(2))
	assert.Equal(t, 400*time.Millisecond, backoff.Duration(3))
	assert.Equal(t, 500*time.Millisecond, backoff.Duration(10))
}

func TestBackoff_Jitter(t *testing.T) {
	backoff := NewBackoff(time.Second, time.Minute, 2.0)
	backoff.Jitter = true

	for range 50 {
		d := backoff.Duration(2)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, 2*time.Second)
	}
}

func TestRetryPolicy_Default(t *testing.T) {
	policy := DefaultRetryPolicy()

	delay, ok := policy.ShouldRetry(1, 0)
	assert.True(t, ok)
	assert.Equal(t, 3*time.Second, delay)

	delay, ok = policy.ShouldRetry(2, 0)
	assert.True(t, ok)
	assert.Equal(t, 6*time.Second, delay)

	_, ok = policy.ShouldRetry(3, 0)
	assert.False(t, ok, "third failure exhausts the policy")
}

func TestRetryPolicy_TaskLimitWins(t *testing.T) {
	policy := DefaultRetryPolicy()

	_, ok := policy.ShouldRetry(1, 1)
	assert.False(t, ok)

	_, ok = policy.ShouldRetry(3, 5)
	assert.True(t, ok)
}
