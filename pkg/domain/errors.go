package domain

import "errors"

// ErrSessionNotFound is returned when a user ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrNotFound is returned when a path does not resolve in the catalog.
var ErrNotFound = errors.New("not found in catalog")

// ErrQuizUnavailable is returned when a subject has no question list.
var ErrQuizUnavailable = errors.New("no quiz available")

// ErrNoRelayTarget is returned when an operator holds no pending relay link.
var ErrNoRelayTarget = errors.New("no pending relay target")
