// Package domain holds the value types shared across the engine: the
// catalog node union, per-user sessions with their overlay state, quiz
// records, inbound events and outbound render instructions.
//
// Types here are plain data with invariant-preserving accessors; all
// behavior lives in internal/catalog and internal/dispatch.
package domain
