package repository

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultThroughput is the minimum manual throughput Cosmos accepts for a
// container, used when the caller does not specify one.
const DefaultThroughput int32 = 400

var containerNameRE = regexp.MustCompile(`^[A-Za-z0-9-]{1,255}$`)

// ContainerSpec carries the validated inputs of a container creation.
type ContainerSpec struct {
	Name             string `validate:"required,containername"`
	PartitionKeyPath string `validate:"required,startswith=/"`
	Throughput       int32  `validate:"gt=0"`
}

// newValidator builds the validator with the custom containername rule
// (alphanumeric and hyphens, 1-255 characters).
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("containername", func(fl validator.FieldLevel) bool {
		return containerNameRE.MatchString(fl.Field().String())
	})
	return v
}

// validateContainerSpec runs pre-flight validation for create_container.
// Each failing field maps to its taxonomy kind; nothing here touches the
// network.
func (r *ContainerRepository) validateContainerSpec(spec ContainerSpec) error {
	err := r.valid.Struct(spec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Name":
			return fmt.Errorf("%w: invalid container name %q, must be alphanumeric or hyphen, 1-255 characters", ErrInvalidInput, spec.Name)
		case "PartitionKeyPath":
			return fmt.Errorf("%w: partition key path %q must start with '/'", ErrInvalidPartitionKey, spec.PartitionKeyPath)
		case "Throughput":
			return fmt.Errorf("%w: throughput must be a positive integer", ErrInvalidInput)
		}
	}
	return fmt.Errorf("%w: invalid container spec", ErrInvalidInput)
}

// validateItemScope checks the arguments every item operation requires.
func validateItemScope(containerName, partitionKeyValue string) error {
	if strings.TrimSpace(containerName) == "" {
		return fmt.Errorf("%w: container name cannot be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(partitionKeyValue) == "" {
		return fmt.Errorf("%w: partition key value cannot be empty", ErrInvalidInput)
	}
	return nil
}

// itemID extracts and checks the mandatory string id field of a payload.
func itemID(item Item) (string, error) {
	if item == nil {
		return "", fmt.Errorf("%w: item must be an object with an 'id' field", ErrInvalidInput)
	}
	raw, ok := item["id"]
	if !ok {
		return "", fmt.Errorf("%w: item must contain an 'id' field", ErrInvalidInput)
	}
	id, ok := raw.(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: item 'id' must be a non-empty string", ErrInvalidInput)
	}
	return id, nil
}
