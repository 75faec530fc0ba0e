// Package cosmosdb provides a narrow, strongly-typed abstraction over the
// Azure Cosmos DB Go SDK (azcosmos).
//
// Overview:
// The package exposes three small interfaces — Client, Database and
// Container — covering exactly the operations orbit needs. Production code
// gets a real adapter via NewClientFromConnectionString or NewClientWithKey;
// tests use MockClient, MockDatabase and MockContainer, which expose function
// fields (DatabaseFn, CreateContainerFn, ...) so behavior can be simulated
// without any network access.
//
// Item bodies cross this boundary as raw JSON ([]byte). The SDK's pagers are
// drained inside the adapter so callers deal with plain slices.
//
// Basic usage:
//
//	client, err := cosmosdb.NewClientFromConnectionString(connStr)
//	if err != nil { /* ... */ }
//
//	db, err := client.Database("orders")
//	containers, err := db.ListContainers(ctx)
//
// In tests:
//
//	db := &cosmosdb.MockDatabase{
//		ListContainersFn: func(ctx context.Context) ([]azcosmos.ContainerProperties, error) {
//			return nil, &azcore.ResponseError{StatusCode: 503}
//		},
//	}
package cosmosdb
