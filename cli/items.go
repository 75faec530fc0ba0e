package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/raywall/orbit/confirm"
	"github.com/raywall/orbit/repository"
)

const itemsUsage = "Usage: orbit items <create|get|update|delete|list> [flags]"

// RunItems dispatches the items subcommands.
func RunItems(c *Context, args []string) int {
	if len(args) == 0 {
		return c.usage(itemsUsage)
	}
	switch args[0] {
	case "create":
		return itemsCreate(c, args[1:])
	case "get":
		return itemsGet(c, args[1:])
	case "update":
		return itemsUpdate(c, args[1:])
	case "delete":
		return itemsDelete(c, args[1:])
	case "list":
		return itemsList(c, args[1:])
	default:
		return c.usage(itemsUsage)
	}
}

// readPayload parses the item document from --data or --file.
func readPayload(data, file string) (repository.Item, error) {
	if data == "" && file == "" {
		return nil, fmt.Errorf("provide the item document with --data or --file")
	}
	raw := []byte(data)
	if file != "" {
		var err error
		raw, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
	}
	var item repository.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("item document is not valid JSON: %w", err)
	}
	return item, nil
}

func itemsCreate(c *Context, args []string) int {
	fs := flag.NewFlagSet("items create", flag.ContinueOnError)
	fs.SetOutput(c.Err)
	pk := fs.String("pk", "", "Partition key value for the item")
	data := fs.String("data", "", "Item document as inline JSON")
	file := fs.String("file", "", "Path to a JSON file with the item document")
	generateID := fs.Bool("generate-id", false, "Assign a generated id when the document has none")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	containerName := fs.Arg(0)
	if containerName == "" || *pk == "" {
		return c.usage("Usage: orbit items create <container> --pk <value> (--data '<json>' | --file <path>) [--generate-id]")
	}

	item, err := readPayload(*data, *file)
	if err != nil {
		fmt.Fprintln(c.Err, err)
		return 2
	}
	if *generateID {
		if _, ok := item["id"]; !ok {
			item["id"] = uuid.NewString()
		}
	}

	repo, err := c.Factory.GetItemRepository()
	if err != nil {
		return c.fail(err)
	}
	created, err := repo.CreateItem(context.Background(), containerName, item, *pk)
	if err != nil {
		return c.fail(err)
	}

	if c.JSON {
		if err := c.renderer().Item(created); err != nil {
			return c.fail(err)
		}
	} else {
		fmt.Fprintf(c.Out, "Created item '%s' in container '%s'\n", created["id"], containerName)
	}
	return 0
}

func itemsGet(c *Context, args []string) int {
	fs := flag.NewFlagSet("items get", flag.ContinueOnError)
	fs.SetOutput(c.Err)
	pk := fs.String("pk", "", "Partition key value for the item")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	containerName, id := fs.Arg(0), fs.Arg(1)
	if containerName == "" || id == "" || *pk == "" {
		return c.usage("Usage: orbit items get <container> <id> --pk <value>")
	}

	repo, err := c.Factory.GetItemRepository()
	if err != nil {
		return c.fail(err)
	}
	item, err := repo.GetItem(context.Background(), containerName, id, *pk)
	if err != nil {
		return c.fail(err)
	}
	if err := c.renderer().Item(item); err != nil {
		return c.fail(err)
	}
	return 0
}

func itemsUpdate(c *Context, args []string) int {
	fs := flag.NewFlagSet("items update", flag.ContinueOnError)
	fs.SetOutput(c.Err)
	pk := fs.String("pk", "", "Partition key value for the item")
	data := fs.String("data", "", "Item document as inline JSON")
	file := fs.String("file", "", "Path to a JSON file with the item document")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	containerName, id := fs.Arg(0), fs.Arg(1)
	if containerName == "" || id == "" || *pk == "" {
		return c.usage("Usage: orbit items update <container> <id> --pk <value> (--data '<json>' | --file <path>)")
	}

	item, err := readPayload(*data, *file)
	if err != nil {
		fmt.Fprintln(c.Err, err)
		return 2
	}

	repo, err := c.Factory.GetItemRepository()
	if err != nil {
		return c.fail(err)
	}
	updated, err := repo.UpdateItem(context.Background(), containerName, id, item, *pk)
	if err != nil {
		return c.fail(err)
	}

	if c.JSON {
		if err := c.renderer().Item(updated); err != nil {
			return c.fail(err)
		}
	} else {
		fmt.Fprintf(c.Out, "Updated item '%s' in container '%s'\n", id, containerName)
	}
	return 0
}

func itemsDelete(c *Context, args []string) int {
	fs := flag.NewFlagSet("items delete", flag.ContinueOnError)
	fs.SetOutput(c.Err)
	pk := fs.String("pk", "", "Partition key value for the item")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	containerName, id := fs.Arg(0), fs.Arg(1)
	if containerName == "" || id == "" || *pk == "" {
		return c.usage("Usage: orbit items delete <container> <id> --pk <value>")
	}

	message := fmt.Sprintf("Delete item '%s' from container '%s'?", id, containerName)
	if err := confirm.Require(c.Yes, message, c.Prompt); err != nil {
		return c.fail(err)
	}

	repo, err := c.Factory.GetItemRepository()
	if err != nil {
		return c.fail(err)
	}
	if err := repo.DeleteItem(context.Background(), containerName, id, *pk); err != nil {
		return c.fail(err)
	}

	if c.JSON {
		if err := c.renderer().Render(map[string]any{"status": "deleted", "item": id, "container": containerName}); err != nil {
			return c.fail(err)
		}
	} else {
		fmt.Fprintf(c.Out, "Deleted item '%s' from container '%s'\n", id, containerName)
	}
	return 0
}

func itemsList(c *Context, args []string) int {
	fs := flag.NewFlagSet("items list", flag.ContinueOnError)
	fs.SetOutput(c.Err)
	maxCount := fs.Int("max", int(repository.DefaultMaxItems), "Maximum number of items to return")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	containerName := fs.Arg(0)
	if containerName == "" {
		return c.usage("Usage: orbit items list <container> [--max N]")
	}

	repo, err := c.Factory.GetItemRepository()
	if err != nil {
		return c.fail(err)
	}
	items, err := repo.ListItems(context.Background(), containerName, int32(*maxCount))
	if err != nil {
		return c.fail(err)
	}
	if err := c.renderer().Items(items); err != nil {
		return c.fail(err)
	}
	return 0
}
