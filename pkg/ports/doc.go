// Package ports defines the boundary interfaces between the engine core
// and the surrounding system: session and relay persistence, catalog and
// quiz sources, and the outbound delivery sinks.
//
// Concrete implementations live under pkg/adapters and internal/adapters.
package ports
