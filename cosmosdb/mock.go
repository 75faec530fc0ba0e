package cosmosdb

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
)

// MockClient is a test double for the Client interface.
//
// Set the function fields (DatabaseFn, ...) to simulate the desired service
// behavior; unset fields fall back to benign defaults so tests only declare
// what they care about.
type MockClient struct {
	DatabaseFn func(name string) (Database, error)
}

func (m *MockClient) Database(name string) (Database, error) {
	if m.DatabaseFn != nil {
		return m.DatabaseFn(name)
	}
	return &MockDatabase{}, nil
}

// MockDatabase is a test double for the Database interface.
type MockDatabase struct {
	CreateContainerFn func(ctx context.Context, properties azcosmos.ContainerProperties, throughput int32) (azcosmos.ContainerProperties, error)
	DeleteContainerFn func(ctx context.Context, name string) error
	ListContainersFn  func(ctx context.Context) ([]azcosmos.ContainerProperties, error)
	ReadContainerFn   func(ctx context.Context, name string) (azcosmos.ContainerProperties, error)
	ReadThroughputFn  func(ctx context.Context, name string) (int32, error)
	ContainerFn       func(name string) (Container, error)
}

func (m *MockDatabase) CreateContainer(ctx context.Context, properties azcosmos.ContainerProperties, throughput int32) (azcosmos.ContainerProperties, error) {
	if m.CreateContainerFn != nil {
		return m.CreateContainerFn(ctx, properties, throughput)
	}
	return properties, nil
}

func (m *MockDatabase) DeleteContainer(ctx context.Context, name string) error {
	if m.DeleteContainerFn != nil {
		return m.DeleteContainerFn(ctx, name)
	}
	return nil
}

func (m *MockDatabase) ListContainers(ctx context.Context) ([]azcosmos.ContainerProperties, error) {
	if m.ListContainersFn != nil {
		return m.ListContainersFn(ctx)
	}
	return nil, nil
}

func (m *MockDatabase) ReadContainer(ctx context.Context, name string) (azcosmos.ContainerProperties, error) {
	if m.ReadContainerFn != nil {
		return m.ReadContainerFn(ctx, name)
	}
	return azcosmos.ContainerProperties{ID: name}, nil
}

func (m *MockDatabase) ReadThroughput(ctx context.Context, name string) (int32, error) {
	if m.ReadThroughputFn != nil {
		return m.ReadThroughputFn(ctx, name)
	}
	return 400, nil
}

func (m *MockDatabase) Container(name string) (Container, error) {
	if m.ContainerFn != nil {
		return m.ContainerFn(name)
	}
	return &MockContainer{}, nil
}

// MockContainer is a test double for the Container interface.
type MockContainer struct {
	CreateItemFn func(ctx context.Context, partitionKey string, body []byte) ([]byte, error)
	ReadItemFn   func(ctx context.Context, partitionKey, itemID string) ([]byte, error)
	UpsertItemFn func(ctx context.Context, partitionKey string, body []byte) ([]byte, error)
	DeleteItemFn func(ctx context.Context, partitionKey, itemID string) error
	QueryItemsFn func(ctx context.Context, query string, pageSize int32) ([][]byte, error)
}

func (m *MockContainer) CreateItem(ctx context.Context, partitionKey string, body []byte) ([]byte, error) {
	if m.CreateItemFn != nil {
		return m.CreateItemFn(ctx, partitionKey, body)
	}
	return body, nil
}

func (m *MockContainer) ReadItem(ctx context.Context, partitionKey, itemID string) ([]byte, error) {
	if m.ReadItemFn != nil {
		return m.ReadItemFn(ctx, partitionKey, itemID)
	}
	return nil, nil
}

func (m *MockContainer) UpsertItem(ctx context.Context, partitionKey string, body []byte) ([]byte, error) {
	if m.UpsertItemFn != nil {
		return m.UpsertItemFn(ctx, partitionKey, body)
	}
	return body, nil
}

func (m *MockContainer) DeleteItem(ctx context.Context, partitionKey, itemID string) error {
	if m.DeleteItemFn != nil {
		return m.DeleteItemFn(ctx, partitionKey, itemID)
	}
	return nil
}

func (m *MockContainer) QueryItems(ctx context.Context, query string, pageSize int32) ([][]byte, error) {
	if m.QueryItemsFn != nil {
		return m.QueryItemsFn(ctx, query, pageSize)
	}
	return nil, nil
}

var (
	_ Client    = (*MockClient)(nil)
	_ Database  = (*MockDatabase)(nil)
	_ Container = (*MockContainer)(nil)
)
