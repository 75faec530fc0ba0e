package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/raywall/orbit/cosmosdb"
)

// Item is an arbitrary JSON document. Every item carries a string "id"
// field and belongs to exactly one partition key value.
type Item = map[string]any

const listItemsQuery = "SELECT * FROM c"

// DefaultMaxItems bounds ListItems when the caller does not specify a
// limit.
const DefaultMaxItems int32 = 100

func (r *ContainerRepository) container(name string) (cosmosdb.Container, error) {
	c, err := r.db.Container(name)
	if err != nil {
		return nil, connectionFailure("resolve container", err)
	}
	return c, nil
}

// CreateItem inserts a new item. The payload must carry a non-empty
// string id.
func (r *ContainerRepository) CreateItem(ctx context.Context, containerName string, item Item, partitionKeyValue string) (Item, error) {
	id, err := itemID(item)
	if err != nil {
		return nil, err
	}
	if err := validateItemScope(containerName, partitionKeyValue); err != nil {
		return nil, err
	}

	body, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("%w: item is not serializable: %v", ErrInvalidInput, err)
	}

	container, err := r.container(containerName)
	if err != nil {
		return nil, err
	}
	raw, err := container.CreateItem(ctx, partitionKeyValue, body)
	if err != nil {
		switch code, ok := statusOf(err); {
		case ok && code == 409:
			return nil, fmt.Errorf("%w: item with id %q already exists in partition", ErrDuplicateItem, id)
		case ok && code == 400:
			return nil, fmt.Errorf("%w: partition key mismatch for item %q", ErrPartitionKeyMismatch, id)
		default:
			return nil, connectionFailure("create item", err)
		}
	}

	r.log.Info().Str("item", id).Str("container", containerName).Msg("created item")
	return decodeItem(raw, item)
}

// GetItem point-reads an item by id and partition key value.
func (r *ContainerRepository) GetItem(ctx context.Context, containerName, id, partitionKeyValue string) (Item, error) {
	if err := validateItemScope(containerName, partitionKeyValue); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%w: item id cannot be empty", ErrInvalidInput)
	}

	container, err := r.container(containerName)
	if err != nil {
		return nil, err
	}
	raw, err := container.ReadItem(ctx, partitionKeyValue, id)
	if err != nil {
		switch code, ok := statusOf(err); {
		case ok && code == 404:
			return nil, fmt.Errorf("%w: item %q not found in container %q", ErrItemNotFound, id, containerName)
		case ok && code == 400:
			return nil, fmt.Errorf("%w: partition key mismatch for item %q", ErrPartitionKeyMismatch, id)
		default:
			return nil, connectionFailure("read item", err)
		}
	}

	r.log.Info().Str("item", id).Str("container", containerName).Msg("read item")
	return decodeItem(raw, nil)
}

// UpdateItem upserts an item (create-or-replace). The payload id must
// match the id argument; the check runs before any remote call.
func (r *ContainerRepository) UpdateItem(ctx context.Context, containerName, id string, item Item, partitionKeyValue string) (Item, error) {
	payloadID, err := itemID(item)
	if err != nil {
		return nil, err
	}
	if payloadID != id {
		return nil, fmt.Errorf("%w: item 'id' field must match the id argument %q", ErrInvalidInput, id)
	}
	if err := validateItemScope(containerName, partitionKeyValue); err != nil {
		return nil, err
	}

	body, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("%w: item is not serializable: %v", ErrInvalidInput, err)
	}

	container, err := r.container(containerName)
	if err != nil {
		return nil, err
	}
	raw, err := container.UpsertItem(ctx, partitionKeyValue, body)
	if err != nil {
		if code, ok := statusOf(err); ok && code == 400 {
			return nil, fmt.Errorf("%w: partition key mismatch for item %q", ErrPartitionKeyMismatch, id)
		}
		return nil, connectionFailure("update item", err)
	}

	r.log.Info().Str("item", id).Str("container", containerName).Msg("updated item")
	return decodeItem(raw, item)
}

// DeleteItem removes an item by id and partition key value. Deleting an
// item that does not exist is not an error.
func (r *ContainerRepository) DeleteItem(ctx context.Context, containerName, id, partitionKeyValue string) error {
	if err := validateItemScope(containerName, partitionKeyValue); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: item id cannot be empty", ErrInvalidInput)
	}

	container, err := r.container(containerName)
	if err != nil {
		return err
	}
	if err := container.DeleteItem(ctx, partitionKeyValue, id); err != nil {
		switch code, ok := statusOf(err); {
		case ok && code == 404:
			r.log.Info().Str("item", id).Str("container", containerName).Msg("item not found during delete")
			return nil
		case ok && code == 400:
			return fmt.Errorf("%w: partition key mismatch for item %q", ErrPartitionKeyMismatch, id)
		default:
			return connectionFailure("delete item", err)
		}
	}

	r.log.Info().Str("item", id).Str("container", containerName).Msg("deleted item")
	return nil
}

// ListItems scans a container, returning at most maxCount items in the
// order the service yields them. There is no total order across
// partitions.
func (r *ContainerRepository) ListItems(ctx context.Context, containerName string, maxCount int32) ([]Item, error) {
	if maxCount <= 0 {
		return nil, fmt.Errorf("%w: maxCount must be a positive integer", ErrInvalidInput)
	}
	if containerName == "" {
		return nil, fmt.Errorf("%w: container name cannot be empty", ErrInvalidInput)
	}

	container, err := r.container(containerName)
	if err != nil {
		return nil, err
	}
	raws, err := container.QueryItems(ctx, listItemsQuery, maxCount)
	if err != nil {
		return nil, connectionFailure("list items", err)
	}
	if int32(len(raws)) > maxCount {
		raws = raws[:maxCount]
	}

	items := make([]Item, 0, len(raws))
	for _, raw := range raws {
		item, err := decodeItem(raw, nil)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	r.log.Info().Int("count", len(items)).Str("container", containerName).Msg("listed items")
	return items, nil
}

// decodeItem unmarshals a raw document, falling back to the request
// payload when the service returned no body (writes without content
// response).
func decodeItem(raw []byte, fallback Item) (Item, error) {
	if len(raw) == 0 {
		return fallback, nil
	}
	var item Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("%w: decoding service response: %v", ErrConnection, err)
	}
	return item, nil
}
