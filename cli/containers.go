package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/raywall/orbit/confirm"
	"github.com/raywall/orbit/repository"
)

const containersUsage = "Usage: orbit containers <list|create|delete|show> [flags]"

// RunContainers dispatches the containers subcommands.
func RunContainers(c *Context, args []string) int {
	if len(args) == 0 {
		return c.usage(containersUsage)
	}
	switch args[0] {
	case "list":
		return containersList(c)
	case "create":
		return containersCreate(c, args[1:])
	case "delete":
		return containersDelete(c, args[1:])
	case "show":
		return containersShow(c, args[1:])
	default:
		return c.usage(containersUsage)
	}
}

func containersList(c *Context) int {
	repo, err := c.Factory.GetContainerRepository()
	if err != nil {
		return c.fail(err)
	}
	containers, err := repo.ListContainers(context.Background())
	if err != nil {
		return c.fail(err)
	}
	if err := c.renderer().Containers(containers); err != nil {
		return c.fail(err)
	}
	return 0
}

func containersCreate(c *Context, args []string) int {
	fs := flag.NewFlagSet("containers create", flag.ContinueOnError)
	fs.SetOutput(c.Err)
	partitionKey := fs.String("partition-key", "", "Partition key path (e.g. /id)")
	throughput := fs.Int("throughput", int(repository.DefaultThroughput), "Throughput in RU/s")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	name := fs.Arg(0)
	if name == "" || *partitionKey == "" {
		return c.usage("Usage: orbit containers create <name> --partition-key </path> [--throughput N]")
	}

	repo, err := c.Factory.GetContainerRepository()
	if err != nil {
		return c.fail(err)
	}
	descriptor, err := repo.CreateContainer(context.Background(), name, *partitionKey, int32(*throughput))
	if err != nil {
		return c.fail(err)
	}

	if c.JSON {
		if err := c.renderer().Container(descriptor); err != nil {
			return c.fail(err)
		}
	} else {
		fmt.Fprintf(c.Out, "Created container '%s' with partition key '%s' (%d RU/s)\n",
			descriptor.Name, descriptor.PartitionKeyPath, descriptor.Throughput)
	}
	return 0
}

func containersDelete(c *Context, args []string) int {
	fs := flag.NewFlagSet("containers delete", flag.ContinueOnError)
	fs.SetOutput(c.Err)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	name := fs.Arg(0)
	if name == "" {
		return c.usage("Usage: orbit containers delete <name>")
	}

	message := fmt.Sprintf("Delete container '%s'? This cannot be undone.", name)
	if err := confirm.Require(c.Yes, message, c.Prompt); err != nil {
		return c.fail(err)
	}

	repo, err := c.Factory.GetContainerRepository()
	if err != nil {
		return c.fail(err)
	}
	if err := repo.DeleteContainer(context.Background(), name); err != nil {
		return c.fail(err)
	}

	if c.JSON {
		if err := c.renderer().Render(map[string]any{"status": "deleted", "container": name}); err != nil {
			return c.fail(err)
		}
	} else {
		fmt.Fprintf(c.Out, "Deleted container '%s'\n", name)
	}
	return 0
}

func containersShow(c *Context, args []string) int {
	fs := flag.NewFlagSet("containers show", flag.ContinueOnError)
	fs.SetOutput(c.Err)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	name := fs.Arg(0)
	if name == "" {
		return c.usage("Usage: orbit containers show <name>")
	}

	repo, err := c.Factory.GetContainerRepository()
	if err != nil {
		return c.fail(err)
	}
	descriptor, err := repo.GetContainerProperties(context.Background(), name)
	if err != nil {
		return c.fail(err)
	}
	if err := c.renderer().Container(descriptor); err != nil {
		return c.fail(err)
	}
	return 0
}
