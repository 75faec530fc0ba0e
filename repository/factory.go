package repository

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/raywall/orbit/config"
	"github.com/raywall/orbit/cosmosdb"
)

// Factory creates repository instances bound to one configured database.
//
// The client handle is resolved lazily on the first repository request and
// cached for the factory's lifetime, so every repository produced by the
// same factory shares one connection. A new factory always re-resolves.
// The check-then-set of the cached handle is guarded by a mutex so
// concurrent first use is safe.
type Factory struct {
	settings config.Settings
	log      zerolog.Logger
	provider ClientProvider

	mu     sync.Mutex
	client cosmosdb.Client
}

func NewFactory(settings config.Settings, log zerolog.Logger) *Factory {
	return &Factory{settings: settings, log: log}
}

// NewFactoryWithProvider pins the auth strategy instead of selecting one
// from the settings. Used by tests and by callers that already hold a
// strategy.
func NewFactoryWithProvider(settings config.Settings, log zerolog.Logger, provider ClientProvider) *Factory {
	return &Factory{settings: settings, log: log, provider: provider}
}

// getClient resolves and caches the client handle. A failed resolution
// leaves the factory uninitialized so a later call may retry.
func (f *Factory) getClient() (cosmosdb.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil {
		return f.client, nil
	}

	if f.settings.DatabaseName == "" {
		return nil, fmt.Errorf("%w: database name not configured, set %s", ErrInvalidInput, config.EnvDatabaseName)
	}

	provider := f.provider
	if provider == nil {
		var err error
		provider, err = StrategyFor(f.settings, f.log)
		if err != nil {
			return nil, err
		}
		f.provider = provider
	}

	client, err := provider.GetClient()
	if err != nil {
		return nil, err
	}
	f.client = client
	return client, nil
}

// GetContainerRepository returns a repository for container lifecycle
// operations against the configured database.
func (f *Factory) GetContainerRepository() (*ContainerRepository, error) {
	client, err := f.getClient()
	if err != nil {
		return nil, err
	}
	db, err := client.Database(f.settings.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid database name %q", ErrInvalidInput, f.settings.DatabaseName)
	}
	return NewContainerRepository(db, f.settings.DatabaseName, f.log), nil
}

// GetItemRepository returns a repository for item operations. Item
// operations are methods on the same concrete type as container
// operations, so this is equivalent to GetContainerRepository.
func (f *Factory) GetItemRepository() (*ContainerRepository, error) {
	return f.GetContainerRepository()
}
