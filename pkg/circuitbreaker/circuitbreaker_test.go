package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errGateway = errors.New("mail gateway unavailable")

func newTestBreaker(threshold uint32, timeout time.Duration) *CircuitBreaker {
	return NewCircuitBreaker("mailer", Config{
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     timeout,
		ReadyToTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	})
}

func trip(cb *CircuitBreaker, n int) {
	for i := 0; i < n; i++ {
		_ = cb.Execute(func() error { return errGateway })
	}
}

func TestCircuitBreaker_Closed(t *testing.T) {
	cb := newTestBreaker(5, time.Minute)

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(func() error { return nil }))
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(10), cb.Counts().TotalSuccesses)
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := newTestBreaker(3, time.Minute)
	trip(cb, 3)

	require.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called, "熔断器打开时不应该调用实际函数")
}

func TestCircuitBreaker_HalfOpen(t *testing.T) {
	t.Run("探测成功后关闭", func(t *testing.T) {
		cb := newTestBreaker(3, 50*time.Millisecond)
		trip(cb, 3)
		time.Sleep(80 * time.Millisecond)

		assert.Equal(t, StateHalfOpen, cb.State())
		require.NoError(t, cb.Execute(func() error { return nil }))
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("探测失败后重新打开", func(t *testing.T) {
		cb := newTestBreaker(3, 50*time.Millisecond)
		trip(cb, 3)
		time.Sleep(80 * time.Millisecond)

		_ = cb.Execute(func() error { return errGateway })
		assert.Equal(t, StateOpen, cb.State())
	})
}

func TestCircuitBreaker_StateChangeCallback(t *testing.T) {
	var changes []string
	cb := newTestBreaker(3, 50*time.Millisecond)
	cb.SetStateChangeCallback(func(name string, from, to State) {
		assert.Equal(t, "mailer", name)
		changes = append(changes, from.String()+"->"+to.String())
	})

	trip(cb, 3)
	time.Sleep(80 * time.Millisecond)
	_ = cb.Execute(func() error { return nil })

	assert.Equal(t, []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}, changes)
}

func TestCircuitBreaker_FailureRate(t *testing.T) {
	cb := NewCircuitBreaker("mailer", Config{
		Interval: time.Hour,
		Timeout:  time.Minute,
		ReadyToTrip: func(counts Counts) bool {
			return counts.Requests >= 10 && counts.FailureRate() > 0.5
		},
	})

	// 4次成功，6次失败
	for i := 0; i < 10; i++ {
		ok := i < 4
		_ = cb.Execute(func() error {
			if ok {
				return nil
			}
			return errGateway
		})
	}

	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_DefaultTrip(t *testing.T) {
	cb := NewCircuitBreaker("mailer", Config{Timeout: time.Minute})
	trip(cb, 4)
	assert.Equal(t, StateClosed, cb.State())
	trip(cb, 1)
	assert.Equal(t, StateOpen, cb.State())
}

func BenchmarkCircuitBreaker(b *testing.B) {
	cb := newTestBreaker(5, time.Minute)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cb.Execute(func() error { return nil })
	}
}
