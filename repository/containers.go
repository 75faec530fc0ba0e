package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/raywall/orbit/cosmosdb"
)

// ContainerDescriptor is the plain result of container read operations.
type ContainerDescriptor struct {
	Name             string `json:"name"`
	PartitionKeyPath string `json:"partition_key"`
	Throughput       int32  `json:"throughput,omitempty"`
	IndexingMode     string `json:"indexing_mode,omitempty"`
	ETag             string `json:"etag,omitempty"`
}

// ContainerRepository exposes container and item lifecycle operations
// against one configured database. Every operation validates its inputs
// locally, issues exactly one remote call and translates any failure into
// the domain error kinds.
type ContainerRepository struct {
	db           cosmosdb.Database
	databaseName string
	log          zerolog.Logger
	valid        *validator.Validate
}

func NewContainerRepository(db cosmosdb.Database, databaseName string, log zerolog.Logger) *ContainerRepository {
	return &ContainerRepository{
		db:           db,
		databaseName: databaseName,
		log:          log,
		valid:        newValidator(),
	}
}

// connectionFailure wraps a transport error as ErrConnection, embedding
// only the status code when the failure came from the service. Local
// errors keep their message; they carry no credential material.
func connectionFailure(op string, err error) error {
	if code, ok := statusOf(err); ok {
		return fmt.Errorf("%w: %s failed (status %d)", ErrConnection, op, code)
	}
	return fmt.Errorf("%w: %s failed: %v", ErrConnection, op, err)
}

func toDescriptor(p azcosmos.ContainerProperties) ContainerDescriptor {
	d := ContainerDescriptor{Name: p.ID}
	if len(p.PartitionKeyDefinition.Paths) > 0 {
		d.PartitionKeyPath = p.PartitionKeyDefinition.Paths[0]
	}
	if p.IndexingPolicy != nil {
		d.IndexingMode = string(p.IndexingPolicy.IndexingMode)
	}
	if p.ETag != nil {
		d.ETag = string(*p.ETag)
	}
	return d
}

// ListContainers enumerates the containers of the configured database in
// service order.
func (r *ContainerRepository) ListContainers(ctx context.Context) ([]ContainerDescriptor, error) {
	props, err := r.db.ListContainers(ctx)
	if err != nil {
		return nil, connectionFailure("list containers", err)
	}
	descriptors := make([]ContainerDescriptor, 0, len(props))
	for _, p := range props {
		descriptors = append(descriptors, toDescriptor(p))
	}
	r.log.Info().Int("count", len(descriptors)).Str("database", r.databaseName).Msg("listed containers")
	return descriptors, nil
}

// CreateContainer provisions a container with the given partition key path
// and manual throughput (RU/s).
func (r *ContainerRepository) CreateContainer(ctx context.Context, name, partitionKeyPath string, throughput int32) (ContainerDescriptor, error) {
	spec := ContainerSpec{Name: name, PartitionKeyPath: partitionKeyPath, Throughput: throughput}
	if err := r.validateContainerSpec(spec); err != nil {
		return ContainerDescriptor{}, err
	}

	props := azcosmos.ContainerProperties{
		ID: name,
		PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{
			Paths: []string{partitionKeyPath},
		},
	}
	created, err := r.db.CreateContainer(ctx, props, throughput)
	if err != nil {
		if code, ok := statusOf(err); ok && code == 409 {
			return ContainerDescriptor{}, fmt.Errorf("%w: container %q already exists", ErrResourceExists, name)
		}
		if quotaIndicated(err) {
			return ContainerDescriptor{}, fmt.Errorf("%w: throughput quota exceeded creating container %q, reduce throughput or check account limits", ErrQuotaExceeded, name)
		}
		return ContainerDescriptor{}, connectionFailure("create container", err)
	}

	r.log.Info().
		Str("container", name).
		Str("partition_key", partitionKeyPath).
		Int32("throughput", throughput).
		Msg("created container")

	descriptor := toDescriptor(created)
	descriptor.Throughput = throughput
	return descriptor, nil
}

// DeleteContainer removes a container by name. Deleting a container that
// does not exist is not an error.
func (r *ContainerRepository) DeleteContainer(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: container name cannot be empty", ErrInvalidInput)
	}

	err := r.db.DeleteContainer(ctx, name)
	if err != nil {
		if code, ok := statusOf(err); ok && code == 404 {
			r.log.Info().Str("container", name).Msg("container not found during delete")
			return nil
		}
		return connectionFailure("delete container", err)
	}
	r.log.Info().Str("container", name).Msg("deleted container")
	return nil
}

// GetContainerProperties reads a container's metadata. Throughput is read
// best-effort; serverless and autoscale containers report it as zero.
func (r *ContainerRepository) GetContainerProperties(ctx context.Context, name string) (ContainerDescriptor, error) {
	if strings.TrimSpace(name) == "" {
		return ContainerDescriptor{}, fmt.Errorf("%w: container name cannot be empty", ErrInvalidInput)
	}

	props, err := r.db.ReadContainer(ctx, name)
	if err != nil {
		if code, ok := statusOf(err); ok && code == 404 {
			return ContainerDescriptor{}, fmt.Errorf("%w: container %q not found", ErrResourceNotFound, name)
		}
		return ContainerDescriptor{}, connectionFailure("read container", err)
	}

	descriptor := toDescriptor(props)
	if throughput, terr := r.db.ReadThroughput(ctx, name); terr == nil {
		descriptor.Throughput = throughput
	}
	r.log.Info().Str("container", name).Msg("read container properties")
	return descriptor, nil
}
