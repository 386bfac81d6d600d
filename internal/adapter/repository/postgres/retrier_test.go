package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

func testRetrier() *Retrier {
	return &Retrier{
		maxRetries:      3,
		initialInterval: time.Millisecond,
		maxInterval:     5 * time.Millisecond,
		maxElapsedTime:  time.Second,
		logger:          zerolog.Nop(),
	}
}

func TestRetrier_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := testRetrier().Retry(context.Background(), func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetrier_RetriesDeadlock(t *testing.T) {
	calls := 0
	err := testRetrier().Retry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return &pgconn.PgError{Code: pgErrDeadlock}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetrier_DoesNotRetryPermanentErrors(t *testing.T) {
	permanent := errors.New("relation does not exist")
	calls := 0
	err := testRetrier().Retry(context.Background(), func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("expected the original error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetrier_GivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	err := testRetrier().Retry(context.Background(), func() error {
		calls++
		return &pgconn.PgError{Code: pgErrSerializationFailure}
	})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != 4 { // initial attempt + 3 retries
		t.Errorf("expected 4 calls, got %d", calls)
	}
}
