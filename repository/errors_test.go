package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	t.Run("extracts status from response errors", func(t *testing.T) {
		code, ok := statusOf(&azcore.ResponseError{StatusCode: 429})
		assert.True(t, ok)
		assert.Equal(t, 429, code)
	})

	t.Run("extracts status from wrapped response errors", func(t *testing.T) {
		wrapped := fmt.Errorf("request failed: %w", &azcore.ResponseError{StatusCode: 404})
		code, ok := statusOf(wrapped)
		assert.True(t, ok)
		assert.Equal(t, 404, code)
	})

	t.Run("reports no status for local errors", func(t *testing.T) {
		_, ok := statusOf(errors.New("dial tcp: connection refused"))
		assert.False(t, ok)
	})
}

func TestIsConnectivity(t *testing.T) {
	for _, msg := range []string{
		"dial tcp 10.0.0.1:443: connect: connection refused",
		"context deadline exceeded (Client.Timeout)",
		"lookup acct.documents.azure.com: no such host",
		"unexpected EOF",
	} {
		assert.True(t, isConnectivity(errors.New(msg)), msg)
	}

	for _, msg := range []string{
		"failed to parse connection string",
		"invalid account key",
	} {
		assert.False(t, isConnectivity(errors.New(msg)), msg)
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{fmt.Errorf("%w: bad name", ErrInvalidInput), 2},
		{fmt.Errorf("%w: bad path", ErrInvalidPartitionKey), 2},
		{fmt.Errorf("%w: nope", ErrAuth), 3},
		{fmt.Errorf("%w: down", ErrConnection), 4},
		{fmt.Errorf("%w: gone", ErrResourceNotFound), 5},
		{fmt.Errorf("%w: gone", ErrItemNotFound), 5},
		{fmt.Errorf("%w: there", ErrResourceExists), 6},
		{fmt.Errorf("%w: there", ErrDuplicateItem), 6},
		{fmt.Errorf("%w: limit", ErrQuotaExceeded), 7},
		{fmt.Errorf("%w: off", ErrPartitionKeyMismatch), 8},
		{errors.New("something else"), 1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ExitCode(tc.err))
	}
}

func TestQuotaIndicated(t *testing.T) {
	assert.True(t, quotaIndicated(&azcore.ResponseError{StatusCode: 429}))
	assert.True(t, quotaIndicated(errors.New("provisioned throughput Quota reached")))
	assert.False(t, quotaIndicated(&azcore.ResponseError{StatusCode: 503}))
}
