/*
Package repository implements orbit's data-access layer: the component
between the CLI commands and the Cosmos DB client.

It owns three things:

  - the domain error taxonomy (errors.go) — a closed set of sentinel errors
    every failure is folded into before it crosses the package boundary;
  - the auth strategies and client factory (strategy.go, factory.go) — a
    lazily-initialized, cached client handle shared by all repositories a
    factory produces;
  - the container repository (containers.go, items.go) — the nine container
    and item lifecycle operations, each performing local validation first,
    exactly one remote call, and error translation.

Delete operations are idempotent: a not-found on delete is swallowed. Every
other not-found is an error. Validation failures never reach the network.
Log lines carry identifiers and counts only — never connection strings,
keys or item payloads.
*/
package repository
