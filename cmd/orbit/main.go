package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/raywall/orbit/cli"
	"github.com/raywall/orbit/config"
	"github.com/raywall/orbit/confirm"
	"github.com/raywall/orbit/logger"
	"github.com/raywall/orbit/repository"
)

const version = "0.3.0"

const rootUsage = `orbit — Cosmos DB container and item CLI

Usage: orbit [--json] [--yes] <command> [args]

Commands:
  containers  Manage containers (list, create, delete, show)
  items       Manage items (create, get, update, delete, list)
  version     Print the orbit version

Global flags:
  --json  Emit machine-readable JSON instead of table output
  --yes   Skip confirmation prompts for destructive operations`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := flag.NewFlagSet("orbit", flag.ContinueOnError)
	root.SetOutput(os.Stderr)
	jsonOut := root.Bool("json", false, "Emit machine-readable JSON instead of table output")
	yes := root.Bool("yes", false, "Skip confirmation prompts for destructive operations")
	root.Usage = func() { fmt.Fprintln(os.Stderr, rootUsage) }
	if err := root.Parse(args); err != nil {
		return 2
	}

	rest := root.Args()
	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, rootUsage)
		return 0
	}

	if rest[0] == "version" {
		fmt.Fprintf(os.Stdout, "orbit version: %s\n", version)
		return 0
	}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	log := logger.Configure(settings.Log)

	ctx := &cli.Context{
		JSON:    *jsonOut,
		Yes:     *yes,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Prompt:  confirm.StdinPrompter(os.Stdin, os.Stderr),
		Factory: repository.NewFactory(settings, log),
	}

	switch rest[0] {
	case "containers":
		return cli.RunContainers(ctx, rest[1:])
	case "items":
		return cli.RunItems(ctx, rest[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n%s\n", rest[0], rootUsage)
		return 2
	}
}
