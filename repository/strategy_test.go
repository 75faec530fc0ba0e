package repository

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/orbit/config"
	"github.com/raywall/orbit/cosmosdb"
)

const testConnectionString = "AccountEndpoint=https://test.documents.azure.com:443/;AccountKey=dGVzdGtleQ=="

func testLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf)
}

func connStrategy(t *testing.T, cs string, newClient func(string) (cosmosdb.Client, error)) (*ConnectionStringStrategy, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s := NewConnectionStringStrategy(config.Settings{ConnectionString: cs}, testLogger(&buf))
	if newClient != nil {
		s.newClient = newClient
	}
	return s, &buf
}

func TestConnectionStringStrategy_GetClient(t *testing.T) {
	t.Run("should return client for valid connection string", func(t *testing.T) {
		want := &cosmosdb.MockClient{}
		var got string
		s, _ := connStrategy(t, testConnectionString, func(cs string) (cosmosdb.Client, error) {
			got = cs
			return want, nil
		})

		client, err := s.GetClient()

		require.NoError(t, err)
		assert.Same(t, want, client.(*cosmosdb.MockClient))
		assert.Equal(t, testConnectionString, got)
	})

	t.Run("should fail with auth error when not provided", func(t *testing.T) {
		s, _ := connStrategy(t, "", nil)

		_, err := s.GetClient()

		assert.ErrorIs(t, err, ErrAuth)
		assert.Contains(t, err.Error(), "not provided")
	})

	t.Run("should fail with auth error when whitespace only", func(t *testing.T) {
		s, _ := connStrategy(t, "   ", nil)

		_, err := s.GetClient()

		assert.ErrorIs(t, err, ErrAuth)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("should fail with auth error for malformed connection string", func(t *testing.T) {
		s, _ := connStrategy(t, "invalid-connection-string", func(string) (cosmosdb.Client, error) {
			return nil, errors.New("failed to parse connection string")
		})

		_, err := s.GetClient()

		assert.ErrorIs(t, err, ErrAuth)
		assert.Contains(t, err.Error(), "malformed")
	})

	t.Run("should fail with auth error on 401", func(t *testing.T) {
		s, _ := connStrategy(t, testConnectionString, func(string) (cosmosdb.Client, error) {
			return nil, &azcore.ResponseError{StatusCode: 401, ErrorCode: "Unauthorized"}
		})

		_, err := s.GetClient()

		assert.ErrorIs(t, err, ErrAuth)
		assert.Contains(t, err.Error(), "authentication failed")
	})

	t.Run("should fail with connection error on other http status", func(t *testing.T) {
		s, _ := connStrategy(t, testConnectionString, func(string) (cosmosdb.Client, error) {
			return nil, &azcore.ResponseError{StatusCode: 503, ErrorCode: "ServiceUnavailable"}
		})

		_, err := s.GetClient()

		assert.ErrorIs(t, err, ErrConnection)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("should fail with connection error for network-looking failures", func(t *testing.T) {
		s, _ := connStrategy(t, testConnectionString, func(string) (cosmosdb.Client, error) {
			return nil, errors.New("dial tcp: connection refused")
		})

		_, err := s.GetClient()

		assert.ErrorIs(t, err, ErrConnection)
	})

	t.Run("should never log the connection string", func(t *testing.T) {
		s, buf := connStrategy(t, testConnectionString, func(string) (cosmosdb.Client, error) {
			return &cosmosdb.MockClient{}, nil
		})

		_, err := s.GetClient()

		require.NoError(t, err)
		assert.NotEmpty(t, buf.String())
		assert.NotContains(t, buf.String(), testConnectionString)
		assert.NotContains(t, buf.String(), "dGVzdGtleQ==")
	})

	t.Run("error messages never contain the connection string", func(t *testing.T) {
		s, _ := connStrategy(t, testConnectionString, func(string) (cosmosdb.Client, error) {
			return nil, &azcore.ResponseError{StatusCode: 500}
		})

		_, err := s.GetClient()

		require.Error(t, err)
		assert.NotContains(t, err.Error(), testConnectionString)
	})
}

func TestAccountKeyStrategy_GetClient(t *testing.T) {
	newStrategy := func(settings config.Settings, newClient func(string, string) (cosmosdb.Client, error)) (*AccountKeyStrategy, *bytes.Buffer) {
		var buf bytes.Buffer
		s := NewAccountKeyStrategy(settings, testLogger(&buf))
		if newClient != nil {
			s.newClient = newClient
		}
		return s, &buf
	}

	t.Run("should return client for endpoint and key", func(t *testing.T) {
		want := &cosmosdb.MockClient{}
		s, _ := newStrategy(config.Settings{Endpoint: "https://acct.documents.azure.com:443/", Key: "c2VjcmV0"},
			func(endpoint, key string) (cosmosdb.Client, error) { return want, nil })

		client, err := s.GetClient()

		require.NoError(t, err)
		assert.Same(t, want, client.(*cosmosdb.MockClient))
	})

	t.Run("should fail with auth error when endpoint missing", func(t *testing.T) {
		s, _ := newStrategy(config.Settings{Key: "c2VjcmV0"}, nil)

		_, err := s.GetClient()

		assert.ErrorIs(t, err, ErrAuth)
		assert.Contains(t, err.Error(), "endpoint")
	})

	t.Run("should fail with auth error when key missing", func(t *testing.T) {
		s, _ := newStrategy(config.Settings{Endpoint: "https://acct.documents.azure.com:443/"}, nil)

		_, err := s.GetClient()

		assert.ErrorIs(t, err, ErrAuth)
	})

	t.Run("should flag emulator endpoints without logging the key", func(t *testing.T) {
		key := "ZW11bGF0b3Itc2VjcmV0"
		s, buf := newStrategy(config.Settings{Endpoint: "https://localhost:8081/", Key: key},
			func(string, string) (cosmosdb.Client, error) { return &cosmosdb.MockClient{}, nil })

		_, err := s.GetClient()

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "emulator")
		assert.NotContains(t, buf.String(), key)
	})
}

func TestStrategyFor(t *testing.T) {
	log := zerolog.Nop()

	t.Run("prefers connection string", func(t *testing.T) {
		provider, err := StrategyFor(config.Settings{ConnectionString: testConnectionString}, log)

		require.NoError(t, err)
		assert.IsType(t, &ConnectionStringStrategy{}, provider)
	})

	t.Run("falls back to endpoint and key", func(t *testing.T) {
		provider, err := StrategyFor(config.Settings{Endpoint: "https://acct.documents.azure.com:443/", Key: "k"}, log)

		require.NoError(t, err)
		assert.IsType(t, &AccountKeyStrategy{}, provider)
	})

	t.Run("fails with auth error when nothing configured", func(t *testing.T) {
		_, err := StrategyFor(config.Settings{}, log)

		assert.ErrorIs(t, err, ErrAuth)
	})
}
