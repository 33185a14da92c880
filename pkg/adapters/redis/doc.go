// Package redis provides Redis-backed stores for multi-instance
// deployments: sessions, relay links and visit progress.
package redis
