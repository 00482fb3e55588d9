package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name     string
		err      error
		expected ErrorClassification
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: NonRetryable,
		},
		{
			name:     "plain error is not a pg error",
			err:      errors.New("dial tcp: connection refused"),
			expected: NonRetryable,
		},
		{
			name:     "connection failure is retryable",
			err:      &pgconn.PgError{Code: pgerrcode.ConnectionFailure},
			expected: Retryable,
		},
		{
			name:     "too many connections is retryable",
			err:      &pgconn.PgError{Code: pgerrcode.TooManyConnections},
			expected: Retryable,
		},
		{
			name:     "cannot connect now is retryable",
			err:      &pgconn.PgError{Code: pgerrcode.CannotConnectNow},
			expected: Retryable,
		},
		{
			name:     "invalid password is not retryable",
			err:      &pgconn.PgError{Code: pgerrcode.InvalidPassword},
			expected: NonRetryable,
		},
		{
			name:     "unknown database is not retryable",
			err:      &pgconn.PgError{Code: pgerrcode.InvalidCatalogName},
			expected: NonRetryable,
		},
		{
			name:     "insufficient privilege is not retryable",
			err:      &pgconn.PgError{Code: pgerrcode.InsufficientPrivilege},
			expected: NonRetryable,
		},
		{
			name:     "unrecognised code defaults to non-retryable",
			err:      &pgconn.PgError{Code: "XX000"},
			expected: NonRetryable,
		},
		{
			name:     "wrapped pg error is unwrapped",
			err:      fmt.Errorf("ping: %w", &pgconn.PgError{Code: pgerrcode.ConnectionDoesNotExist}),
			expected: Retryable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify(tt.err))
		})
	}
}
