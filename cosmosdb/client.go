package cosmosdb

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
)

// NewClientFromConnectionString builds a Client from an account connection
// string. SDK errors are returned untranslated; classification into domain
// errors happens in the repository layer.
func NewClientFromConnectionString(connectionString string) (Client, error) {
	inner, err := azcosmos.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, err
	}
	return &sdkClient{inner: inner}, nil
}

// NewClientWithKey builds a Client from an endpoint and account key.
func NewClientWithKey(endpoint, key string) (Client, error) {
	cred, err := azcosmos.NewKeyCredential(key)
	if err != nil {
		return nil, err
	}
	inner, err := azcosmos.NewClientWithKey(endpoint, cred, nil)
	if err != nil {
		return nil, err
	}
	return &sdkClient{inner: inner}, nil
}

type sdkClient struct {
	inner *azcosmos.Client
}

func (c *sdkClient) Database(name string) (Database, error) {
	db, err := c.inner.NewDatabase(name)
	if err != nil {
		return nil, err
	}
	return &sdkDatabase{inner: db}, nil
}

type sdkDatabase struct {
	inner *azcosmos.DatabaseClient
}

func (d *sdkDatabase) CreateContainer(ctx context.Context, properties azcosmos.ContainerProperties, throughput int32) (azcosmos.ContainerProperties, error) {
	tp := azcosmos.NewManualThroughputProperties(throughput)
	resp, err := d.inner.CreateContainer(ctx, properties, &azcosmos.CreateContainerOptions{
		ThroughputProperties: &tp,
	})
	if err != nil {
		return azcosmos.ContainerProperties{}, err
	}
	if resp.ContainerProperties == nil {
		// some gateway responses omit the body; echo the request
		return properties, nil
	}
	return *resp.ContainerProperties, nil
}

func (d *sdkDatabase) DeleteContainer(ctx context.Context, name string) error {
	container, err := d.inner.NewContainer(name)
	if err != nil {
		return err
	}
	_, err = container.Delete(ctx, nil)
	return err
}

func (d *sdkDatabase) ListContainers(ctx context.Context) ([]azcosmos.ContainerProperties, error) {
	var all []azcosmos.ContainerProperties
	pager := d.inner.NewQueryContainersPager("SELECT * FROM c", nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Containers...)
	}
	return all, nil
}

func (d *sdkDatabase) ReadContainer(ctx context.Context, name string) (azcosmos.ContainerProperties, error) {
	container, err := d.inner.NewContainer(name)
	if err != nil {
		return azcosmos.ContainerProperties{}, err
	}
	resp, err := container.Read(ctx, nil)
	if err != nil {
		return azcosmos.ContainerProperties{}, err
	}
	if resp.ContainerProperties == nil {
		return azcosmos.ContainerProperties{ID: name}, nil
	}
	return *resp.ContainerProperties, nil
}

func (d *sdkDatabase) ReadThroughput(ctx context.Context, name string) (int32, error) {
	container, err := d.inner.NewContainer(name)
	if err != nil {
		return 0, err
	}
	resp, err := container.ReadThroughput(ctx, nil)
	if err != nil {
		return 0, err
	}
	throughput, _ := resp.ThroughputProperties.ManualThroughput()
	return throughput, nil
}

func (d *sdkDatabase) Container(name string) (Container, error) {
	container, err := d.inner.NewContainer(name)
	if err != nil {
		return nil, err
	}
	return &sdkContainer{inner: container}, nil
}

type sdkContainer struct {
	inner *azcosmos.ContainerClient
}

// contentResponse asks the service to return the stored document on writes,
// so create/upsert can hand the caller the item as persisted.
func contentResponse() *azcosmos.ItemOptions {
	return &azcosmos.ItemOptions{EnableContentResponseOnWrite: true}
}

func (c *sdkContainer) CreateItem(ctx context.Context, partitionKey string, body []byte) ([]byte, error) {
	resp, err := c.inner.CreateItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), body, contentResponse())
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}

func (c *sdkContainer) ReadItem(ctx context.Context, partitionKey, itemID string) ([]byte, error) {
	resp, err := c.inner.ReadItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), itemID, nil)
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}

func (c *sdkContainer) UpsertItem(ctx context.Context, partitionKey string, body []byte) ([]byte, error) {
	resp, err := c.inner.UpsertItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), body, contentResponse())
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}

func (c *sdkContainer) DeleteItem(ctx context.Context, partitionKey, itemID string) error {
	_, err := c.inner.DeleteItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), itemID, nil)
	return err
}

// QueryItems drains the query pager until pageSize items were collected or
// the pager is exhausted. An empty PartitionKey makes the query
// cross-partition; ordering across partitions is whatever the service
// returns.
func (c *sdkContainer) QueryItems(ctx context.Context, query string, pageSize int32) ([][]byte, error) {
	opts := &azcosmos.QueryOptions{PageSizeHint: pageSize}
	pager := c.inner.NewQueryItemsPager(query, azcosmos.PartitionKey{}, opts)

	var items [][]byte
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
		if int32(len(items)) >= pageSize {
			break
		}
	}
	return items, nil
}
