// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// The schema provider port is implemented by outbound adapters (the file
// catalog, the remote metadata client) and called by the application layer.
package ports
