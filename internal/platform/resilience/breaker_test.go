package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestBreaker_Transitions(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second})

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.Failure()
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.Failure()
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open trial call to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second concurrent trial call to be rejected, got %v", err)
	}

	b.Success()
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after successful trial call, got %s", state)
	}
}

func TestBreaker_FailedTrialReopens(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second})

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.Failure()
	now = now.Add(2 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected trial call, got %v", err)
	}

	b.Failure()
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected reopen after failed trial call, got %s", state)
	}
}

func TestBreaker_SuccessResetsStreak(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Second})

	b.Failure()
	b.Success()
	b.Failure()
	if state := b.State(); state != StateClosed {
		t.Fatalf("non-consecutive failures must not trip, got %s", state)
	}
}

func TestBreaker_Disabled(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: false, FailureThreshold: 1})
	b.Failure()
	b.Failure()
	if err := b.Allow(); err != nil {
		t.Fatalf("disabled breaker must allow, got %v", err)
	}
}

func TestBreakerConfig_Normalize(t *testing.T) {
	cfg := BreakerConfig{Enabled: true}.Normalize()
	if cfg.FailureThreshold != 5 || cfg.OpenTimeout != 30*time.Second {
		t.Fatalf("unexpected normalized config: %+v", cfg)
	}
}
