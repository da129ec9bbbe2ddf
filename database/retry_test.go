package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSqlState(t *testing.T) {
	assert.Equal(t, "40001", sqlState(&pgconn.PgError{Code: "40001"}))
	assert.Equal(t, "", sqlState(errors.New("plain error")))
	assert.Equal(t, "", sqlState(nil))

	wrapped := errors.Join(errors.New("query failed"), &pgconn.PgError{Code: "23505"})
	assert.Equal(t, "23505", sqlState(wrapped))
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "context canceled", err: context.Canceled, want: false},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: false},
		{name: "no rows", err: sql.ErrNoRows, want: false},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "undefined table", err: &pgconn.PgError{Code: "42P01"}, want: false},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "connection failure", err: &pgconn.PgError{Code: "08006"}, want: true},
		{name: "too many connections", err: &pgconn.PgError{Code: "53300"}, want: true},
		{name: "connection refused message", err: errors.New("dial tcp: connection refused"), want: true},
		{name: "broken pipe message", err: errors.New("write: broken pipe"), want: true},
		{name: "plain logic error", err: errors.New("something else"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestRetryWithBackoffRecovers(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
		EnableRetry:  true,
	}

	attempts := 0
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		attempts++
		if attempts < 3 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoffStopsOnNonRetryable(t *testing.T) {
	cfg := DefaultRetryConfig()
	cfg.InitialDelay = time.Millisecond

	attempts := 0
	wantErr := &pgconn.PgError{Code: "23505"}
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		attempts++
		return wantErr
	})

	assert.Equal(t, wantErr, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryWithBackoffExhaustsAttempts(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
		EnableRetry:  true,
	}

	attempts := 0
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		attempts++
		return errors.New("connection reset by peer")
	})

	assert.Error(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRetryDisabledRunsOnce(t *testing.T) {
	cfg := DefaultRetryConfig()
	cfg.EnableRetry = false

	attempts := 0
	_ = RetryWithBackoff(context.Background(), cfg, func() error {
		attempts++
		return errors.New("connection refused")
	})

	assert.Equal(t, 1, attempts)
}
