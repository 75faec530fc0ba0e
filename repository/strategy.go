package repository

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/raywall/orbit/config"
	"github.com/raywall/orbit/cosmosdb"
)

// ClientProvider produces an authenticated client handle. Implementations
// are the auth strategies; all of them classify their own failures into the
// domain error kinds before returning.
type ClientProvider interface {
	GetClient() (cosmosdb.Client, error)
}

// StrategyFor selects the auth strategy for the given settings: connection
// string when present, endpoint/key otherwise.
func StrategyFor(settings config.Settings, log zerolog.Logger) (ClientProvider, error) {
	if settings.ConnectionString != "" {
		return NewConnectionStringStrategy(settings, log), nil
	}
	if settings.Endpoint != "" || settings.Key != "" {
		return NewAccountKeyStrategy(settings, log), nil
	}
	return nil, fmt.Errorf("%w: no credentials configured", ErrAuth)
}

// ConnectionStringStrategy authenticates with an account connection string.
type ConnectionStringStrategy struct {
	settings config.Settings
	log      zerolog.Logger

	// newClient is replaceable in tests so no network is touched.
	newClient func(connectionString string) (cosmosdb.Client, error)
}

func NewConnectionStringStrategy(settings config.Settings, log zerolog.Logger) *ConnectionStringStrategy {
	return &ConnectionStringStrategy{
		settings:  settings,
		log:       log,
		newClient: cosmosdb.NewClientFromConnectionString,
	}
}

func (s *ConnectionStringStrategy) GetClient() (cosmosdb.Client, error) {
	cs := s.settings.ConnectionString
	if cs == "" {
		return nil, fmt.Errorf("%w: connection string not provided", ErrAuth)
	}
	if strings.TrimSpace(cs) == "" {
		return nil, fmt.Errorf("%w: connection string is empty", ErrAuth)
	}

	// never log the connection string or anything derived from it
	s.log.Info().Msg("initializing connection string auth strategy")

	client, err := s.newClient(cs)
	if err != nil {
		return nil, classifyClientError(err, "malformed connection string")
	}
	return client, nil
}

// AccountKeyStrategy authenticates with an explicit endpoint and account
// key, the pair used when no connection string is configured (emulator and
// managed environments).
type AccountKeyStrategy struct {
	settings config.Settings
	log      zerolog.Logger

	newClient func(endpoint, key string) (cosmosdb.Client, error)
}

func NewAccountKeyStrategy(settings config.Settings, log zerolog.Logger) *AccountKeyStrategy {
	return &AccountKeyStrategy{
		settings:  settings,
		log:       log,
		newClient: cosmosdb.NewClientWithKey,
	}
}

func (s *AccountKeyStrategy) GetClient() (cosmosdb.Client, error) {
	if strings.TrimSpace(s.settings.Endpoint) == "" {
		return nil, fmt.Errorf("%w: endpoint required for account key auth", ErrAuth)
	}
	if strings.TrimSpace(s.settings.Key) == "" {
		return nil, fmt.Errorf("%w: account key not provided", ErrAuth)
	}

	event := s.log.Info()
	if config.IsEmulatorEndpoint(s.settings.Endpoint) {
		event = event.Bool("emulator", true)
	}
	event.Msg("initializing account key auth strategy")

	client, err := s.newClient(s.settings.Endpoint, s.settings.Key)
	if err != nil {
		return nil, classifyClientError(err, "invalid account key")
	}
	return client, nil
}

// classifyClientError folds an SDK failure into the domain taxonomy:
// HTTP 401 means bad credentials, any other HTTP status is a connection
// problem reported by status code only, and local errors are auth problems
// (parse/format) unless their message points at the network.
func classifyClientError(err error, localMsg string) error {
	if code, ok := statusOf(err); ok {
		if code == 401 {
			return fmt.Errorf("%w: authentication failed, verify account credentials", ErrAuth)
		}
		return fmt.Errorf("%w: failed to connect (status %d)", ErrConnection, code)
	}
	if isConnectivity(err) {
		return fmt.Errorf("%w: endpoint unreachable", ErrConnection)
	}
	return fmt.Errorf("%w: %s", ErrAuth, localMsg)
}
