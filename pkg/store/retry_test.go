package store

import (
	"errors"
	"testing"
	"time"
)

var fastRetry = retryConfig{maxRetries: 2, baseDelay: time.Millisecond, maxDelay: 5 * time.Millisecond}

func TestIsTransientSQLiteErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"constraint", errors.New("UNIQUE constraint failed: kv.key"), false},
		{"busy", errors.New("SQLITE_BUSY"), true},
		{"locked text", errors.New("database is locked"), true},
		{"table locked", errors.New("database table is locked"), true},
		{"code 6", errors.New("sqlite: (6) table is locked"), true},
		{"code 522", errors.New("sqlite: (522) short read"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTransientSQLiteErr(tt.err); got != tt.want {
				t.Errorf("isTransientSQLiteErr(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetryOp_PermanentErrorNotRetried(t *testing.T) {
	calls := 0
	permanent := errors.New("no such table: kv")
	err := retryOp(fastRetry, func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("got %v, want %v", err, permanent)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestRetryOp_RecoversFromBusy(t *testing.T) {
	calls := 0
	err := retryOp(fastRetry, func() error {
		calls++
		if calls < 2 {
			return errors.New("SQLITE_BUSY")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestRetryOp_GivesUp(t *testing.T) {
	calls := 0
	err := retryOp(fastRetry, func() error {
		calls++
		return errors.New("database is locked")
	})
	if err == nil {
		t.Fatal("expected error once retries are exhausted")
	}
	// one attempt plus maxRetries retries
	if calls != fastRetry.maxRetries+1 {
		t.Fatalf("calls = %d, want %d", calls, fastRetry.maxRetries+1)
	}
}

func TestBackoffDelay_Bounds(t *testing.T) {
	cfg := retryConfig{baseDelay: 50 * time.Millisecond, maxDelay: 150 * time.Millisecond}
	cases := []struct {
		attempt  int
		min, max time.Duration
	}{
		{0, 50 * time.Millisecond, 100 * time.Millisecond},
		{1, 100 * time.Millisecond, 150 * time.Millisecond},
		{4, 150 * time.Millisecond, 200 * time.Millisecond},
	}
	for _, tc := range cases {
		d := backoffDelay(cfg, tc.attempt)
		if d < tc.min || d >= tc.max {
			t.Errorf("attempt %d: delay %v not in [%v, %v)", tc.attempt, d, tc.min, tc.max)
		}
	}
}
