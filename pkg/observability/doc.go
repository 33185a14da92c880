// Package observability holds the prometheus collectors exposed by the
// HTTP gateway's /metrics endpoint.
package observability
