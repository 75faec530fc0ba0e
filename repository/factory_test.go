package repository

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/orbit/config"
	"github.com/raywall/orbit/cosmosdb"
)

// countingProvider records how often the factory resolves a client.
type countingProvider struct {
	client cosmosdb.Client
	err    error
	calls  int
}

func (p *countingProvider) GetClient() (cosmosdb.Client, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.client, nil
}

func TestFactory_GetContainerRepository(t *testing.T) {
	settings := config.Settings{DatabaseName: "orders"}

	t.Run("should fail with invalid input when database name missing", func(t *testing.T) {
		provider := &countingProvider{client: &cosmosdb.MockClient{}}
		factory := NewFactoryWithProvider(config.Settings{}, zerolog.Nop(), provider)

		_, err := factory.GetContainerRepository()

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, provider.calls, "provider must not run before the database name check")
	})

	t.Run("should propagate provider errors unchanged", func(t *testing.T) {
		want := fmt.Errorf("%w: connection string not provided", ErrAuth)
		factory := NewFactoryWithProvider(settings, zerolog.Nop(), &countingProvider{err: want})

		_, err := factory.GetContainerRepository()

		assert.ErrorIs(t, err, ErrAuth)
		assert.EqualError(t, err, want.Error())
	})

	t.Run("should cache the client across repository requests", func(t *testing.T) {
		provider := &countingProvider{client: &cosmosdb.MockClient{}}
		factory := NewFactoryWithProvider(settings, zerolog.Nop(), provider)

		first, err := factory.GetContainerRepository()
		require.NoError(t, err)
		second, err := factory.GetItemRepository()
		require.NoError(t, err)

		assert.Equal(t, 1, provider.calls, "one factory resolves exactly one client")
		assert.NotNil(t, first)
		assert.NotNil(t, second)

		handle, err := factory.getClient()
		require.NoError(t, err)
		assert.Same(t, provider.client, handle)
	})

	t.Run("distinct factories never share a handle", func(t *testing.T) {
		providerA := &countingProvider{client: &cosmosdb.MockClient{}}
		providerB := &countingProvider{client: &cosmosdb.MockClient{}}
		factoryA := NewFactoryWithProvider(settings, zerolog.Nop(), providerA)
		factoryB := NewFactoryWithProvider(settings, zerolog.Nop(), providerB)

		handleA, err := factoryA.getClient()
		require.NoError(t, err)
		handleB, err := factoryB.getClient()
		require.NoError(t, err)

		assert.NotSame(t, handleA.(*cosmosdb.MockClient), handleB.(*cosmosdb.MockClient))
	})

	t.Run("a failed init may retry on the next request", func(t *testing.T) {
		provider := &countingProvider{err: fmt.Errorf("%w: endpoint unreachable", ErrConnection)}
		factory := NewFactoryWithProvider(settings, zerolog.Nop(), provider)

		_, err := factory.GetContainerRepository()
		require.ErrorIs(t, err, ErrConnection)

		provider.err = nil
		provider.client = &cosmosdb.MockClient{}
		repo, err := factory.GetContainerRepository()

		require.NoError(t, err)
		assert.NotNil(t, repo)
		assert.Equal(t, 2, provider.calls)
	})

	t.Run("item and container repositories are the same concrete type", func(t *testing.T) {
		factory := NewFactoryWithProvider(settings, zerolog.Nop(), &countingProvider{client: &cosmosdb.MockClient{}})

		containerRepo, err := factory.GetContainerRepository()
		require.NoError(t, err)
		itemRepo, err := factory.GetItemRepository()
		require.NoError(t, err)

		assert.IsType(t, containerRepo, itemRepo)
	})
}
