// Package http exposes the engine over a small JSON API and provides
// webhook-based delivery sinks.
package http
