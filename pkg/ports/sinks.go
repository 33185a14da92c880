package ports

import "context"

// Notifier delivers a notification to the operator channel. Delivery is
// best-effort, at-most-once: callers report failures to the initiating
// user but never retry or queue. A non-empty replyUser attaches a reply
// affordance which, when activated by the operator, establishes a relay
// link back to that user.
type Notifier interface {
	Notify(ctx context.Context, text, replyUser string) error
}

// Messenger delivers text directly to a user, out of band of the normal
// request/response render cycle. Used to relay operator replies.
type Messenger interface {
	SendTo(ctx context.Context, userID, text string) error
}

// ProgressSink records that a user has visited a subject. Write-only,
// fire-and-forget: the engine logs failures and moves on.
type ProgressSink interface {
	MarkVisited(ctx context.Context, userID string, path []string) error
}
