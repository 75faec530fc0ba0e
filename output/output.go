// Package output renders command results either as deterministic JSON or
// as aligned plain-text tables. It is presentation plumbing only; all
// domain decisions happen in the repository layer.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/raywall/orbit/repository"
)

// Renderer writes command results to Out. When JSON is set all output is
// machine-readable; map keys are emitted sorted, so output is stable for
// scripting and tests.
type Renderer struct {
	JSON bool
	Out  io.Writer
}

// Render emits v as JSON in JSON mode, or with a plain Println otherwise.
func (r Renderer) Render(v any) error {
	if r.JSON {
		enc := json.NewEncoder(r.Out)
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(r.Out, v)
	return err
}

// Containers renders a container listing.
func (r Renderer) Containers(containers []repository.ContainerDescriptor) error {
	if r.JSON {
		if containers == nil {
			containers = []repository.ContainerDescriptor{}
		}
		return r.Render(map[string]any{"containers": containers})
	}
	if len(containers) == 0 {
		_, err := fmt.Fprintln(r.Out, "No containers found")
		return err
	}

	w := tabwriter.NewWriter(r.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPARTITION KEY\tTHROUGHPUT (RU/s)")
	for _, c := range containers {
		throughput := "N/A"
		if c.Throughput > 0 {
			throughput = strconv.FormatInt(int64(c.Throughput), 10)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.PartitionKeyPath, throughput)
	}
	return w.Flush()
}

// Container renders a single container descriptor.
func (r Renderer) Container(c repository.ContainerDescriptor) error {
	if r.JSON {
		return r.Render(map[string]any{"container": c})
	}
	w := tabwriter.NewWriter(r.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", c.Name)
	fmt.Fprintf(w, "Partition key:\t%s\n", c.PartitionKeyPath)
	if c.Throughput > 0 {
		fmt.Fprintf(w, "Throughput:\t%d RU/s\n", c.Throughput)
	} else {
		fmt.Fprintf(w, "Throughput:\tN/A\n")
	}
	if c.IndexingMode != "" {
		fmt.Fprintf(w, "Indexing mode:\t%s\n", c.IndexingMode)
	}
	return w.Flush()
}

// Items renders an item listing: one compact JSON document per row keyed
// by id in table mode.
func (r Renderer) Items(items []repository.Item) error {
	if r.JSON {
		if items == nil {
			items = []repository.Item{}
		}
		return r.Render(map[string]any{"items": items})
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(r.Out, "No items found")
		return err
	}

	w := tabwriter.NewWriter(r.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDOCUMENT")
	for _, item := range items {
		id, _ := item["id"].(string)
		doc, err := json.Marshal(item)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", id, doc)
	}
	return w.Flush()
}

// Item renders a single item.
func (r Renderer) Item(item repository.Item) error {
	if r.JSON {
		return r.Render(map[string]any{"item": item})
	}
	doc, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.Out, string(doc))
	return err
}
