// Package session provides the lock-aware session manager. It guarantees
// that all mutations of one user's session are serialized with respect to
// that user's own concurrent events, without any cross-user lock.
package session
