// Package cli implements orbit's subcommands. It is thin plumbing: flag
// parsing, confirmation prompts and rendering around the repository layer.
// Global flags travel explicitly in a Context value — there is no
// package-level mutable state.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/raywall/orbit/config"
	"github.com/raywall/orbit/confirm"
	"github.com/raywall/orbit/output"
	"github.com/raywall/orbit/repository"
)

// Context carries the global flags and collaborators every command needs.
type Context struct {
	JSON    bool
	Yes     bool
	Out     io.Writer
	Err     io.Writer
	Prompt  confirm.Prompter
	Factory *repository.Factory
}

func (c *Context) renderer() output.Renderer {
	return output.Renderer{JSON: c.JSON, Out: c.Out}
}

// fail prints one actionable message for the error and returns the
// process exit status.
func (c *Context) fail(err error) int {
	fmt.Fprintln(c.Err, messageFor(err))
	if errors.Is(err, confirm.ErrAborted) {
		return 1
	}
	return repository.ExitCode(err)
}

// usage prints a subcommand usage line and returns the invalid-input
// status.
func (c *Context) usage(text string) int {
	fmt.Fprintln(c.Err, text)
	return 2
}

// messageFor maps each domain error kind to one actionable message.
// Secrets never appear here: repository errors carry none by contract.
func messageFor(err error) string {
	switch {
	case errors.Is(err, confirm.ErrAborted):
		return "Aborted by user."
	case errors.Is(err, repository.ErrAuth):
		return fmt.Sprintf("Authentication error: %v\nSet the %s environment variable with your Cosmos DB connection string.", err, config.EnvConnectionString)
	case errors.Is(err, repository.ErrConnection):
		return "Failed to connect to Cosmos DB. Check connection string."
	case errors.Is(err, repository.ErrQuotaExceeded):
		return "Throughput quota exceeded. Reduce the --throughput value or check account limits."
	case errors.Is(err, repository.ErrResourceExists):
		return fmt.Sprintf("%v\nUse 'orbit containers list' to see existing containers.", err)
	case errors.Is(err, repository.ErrDuplicateItem):
		return fmt.Sprintf("%v\nUse 'orbit items update' to replace an existing item.", err)
	case errors.Is(err, repository.ErrPartitionKeyMismatch):
		return fmt.Sprintf("%v\nVerify the --pk value matches the item's partition key.", err)
	case errors.Is(err, repository.ErrResourceNotFound),
		errors.Is(err, repository.ErrItemNotFound):
		return err.Error()
	case errors.Is(err, repository.ErrInvalidPartitionKey):
		return fmt.Sprintf("Invalid partition key: %v", err)
	case errors.Is(err, repository.ErrInvalidInput):
		return fmt.Sprintf("Invalid input: %v", err)
	default:
		return err.Error()
	}
}
