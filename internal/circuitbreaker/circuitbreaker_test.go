//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(DefaultConfig())
	err := cb.Execute(context.Background(), func() error {
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_Execute_Failure(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
		Name:             "test",
	})

	testErr := errors.New("test error")

	// First failure
	err := cb.Execute(context.Background(), func() error {
		return testErr
	})
	assert.Equal(t, testErr, err)
	assert.Equal(t, StateClosed, cb.State())

	// Second failure - should open circuit
	err = cb.Execute(context.Background(), func() error {
		return testErr
	})
	assert.Equal(t, testErr, err)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err = cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.Equal(t, ErrCircuitOpen, err)
	assert.False(t, called)
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 2,
		SuccessThreshold: 2,
		Timeout:          50 * time.Millisecond,
		Name:             "test",
	})

	_ = cb.Execute(context.Background(), func() error { return errors.New("error") })
	_ = cb.Execute(context.Background(), func() error { return errors.New("error") })
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateHalfOpen, cb.State())

	err = cb.Execute(context.Background(), func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpen_Failure(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 2,
		SuccessThreshold: 2,
		Timeout:          50 * time.Millisecond,
		Name:             "test",
	})

	_ = cb.Execute(context.Background(), func() error { return errors.New("error") })
	_ = cb.Execute(context.Background(), func() error { return errors.New("error") })
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	// Failure in half-open should immediately reopen
	err := cb.Execute(context.Background(), func() error {
		return errors.New("error")
	})
	assert.Error(t, err)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_IsFailure(t *testing.T) {
	rejected := errors.New("address rejected")
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test",
		IsFailure: func(err error) bool {
			return !errors.Is(err, rejected)
		},
	})

	err := cb.Execute(context.Background(), func() error { return rejected })

	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, StateClosed, cb.State())

	_ = cb.Execute(context.Background(), func() error { return errors.New("timeout") })
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_ContextCanceled(t *testing.T) {
	cb := New(Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute, Name: "test"})

	t.Run("done context skips the call", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := cb.Execute(ctx, func() error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("cancellation does not open the circuit", func(t *testing.T) {
		err := cb.Execute(context.Background(), func() error { return context.Canceled })

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, StateClosed, cb.State())
	})
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	var (
		mu          sync.Mutex
		transitions []string
	)
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          20 * time.Millisecond,
		Name:             "easypost",
		OnStateChange: func(name string, from, to State) {
			mu.Lock()
			defer mu.Unlock()
			transitions = append(transitions, name+":"+from.String()+"->"+to.String())
		},
	})

	_ = cb.Execute(context.Background(), func() error { return nil })
	_ = cb.Execute(context.Background(), func() error { return errors.New("error") })
	time.Sleep(30 * time.Millisecond)
	_ = cb.Execute(context.Background(), func() error { return nil })

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"easypost:closed->open",
		"easypost:open->half-open",
		"easypost:half-open->closed",
	}, transitions)
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(DefaultConfig())

	stats := cb.GetStats()
	assert.Equal(t, "circuit-breaker", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Equal(t, 0, stats.FailureCount)

	_ = cb.Execute(context.Background(), func() error {
		return errors.New("error")
	})

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestCircuitBreaker_IsOpen(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
		Name:             "test",
	})

	assert.False(t, cb.IsOpen())

	_ = cb.Execute(context.Background(), func() error {
		return errors.New("error")
	})

	assert.True(t, cb.IsOpen())
	assert.False(t, cb.GetStats().IsHealthy)
}

func TestNew_NormalizesThresholds(t *testing.T) {
	cb := New(Config{Name: "zero"})

	_ = cb.Execute(context.Background(), func() error { return errors.New("error") })

	assert.True(t, cb.IsOpen())
	assert.Equal(t, "zero", cb.Name())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 5, config.FailureThreshold)
	assert.Equal(t, 2, config.SuccessThreshold)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, "circuit-breaker", config.Name)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
