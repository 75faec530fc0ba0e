package cosmosdb

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
)

// Client is the minimal surface of an authenticated Cosmos DB connection.
// It is created once per process (see repository.Factory) and shared by
// every repository derived from it.
type Client interface {
	// Database returns a handle scoped to one database name.
	Database(name string) (Database, error)
}

// Database covers container lifecycle operations within one database.
type Database interface {
	CreateContainer(ctx context.Context, properties azcosmos.ContainerProperties, throughput int32) (azcosmos.ContainerProperties, error)
	DeleteContainer(ctx context.Context, name string) error
	ListContainers(ctx context.Context) ([]azcosmos.ContainerProperties, error)
	ReadContainer(ctx context.Context, name string) (azcosmos.ContainerProperties, error)
	// ReadThroughput returns the provisioned manual throughput (RU/s) of a
	// container. Serverless accounts and autoscale containers return an error.
	ReadThroughput(ctx context.Context, name string) (int32, error)
	Container(name string) (Container, error)
}

// Container covers item operations within one container. Bodies are raw
// JSON documents; partition key values are strings.
type Container interface {
	CreateItem(ctx context.Context, partitionKey string, body []byte) ([]byte, error)
	ReadItem(ctx context.Context, partitionKey, itemID string) ([]byte, error)
	UpsertItem(ctx context.Context, partitionKey string, body []byte) ([]byte, error)
	DeleteItem(ctx context.Context, partitionKey, itemID string) error
	// QueryItems runs a cross-partition query and returns up to pageSize
	// raw item documents.
	QueryItems(ctx context.Context, query string, pageSize int32) ([][]byte, error)
}
