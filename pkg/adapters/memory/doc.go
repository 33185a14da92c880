// Package memory provides in-memory store implementations: the default
// wiring for tests and single-process deployments.
package memory
