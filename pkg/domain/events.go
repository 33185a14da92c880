package domain

// Event is one inbound message from the transport.
type Event struct {
	// UserID is the sender's stable identifier.
	UserID string `json:"user_id"`

	// Text is the raw message text.
	Text string `json:"text"`

	// IsOperator marks messages arriving on the dedicated operator
	// channel. Only those may consume a pending relay link.
	IsOperator bool `json:"is_operator,omitempty"`
}

// Render is the outbound instruction for the transport.
type Render struct {
	// Text is the message to display.
	Text string `json:"text"`

	// Choices is the ordered set of valid next selections, rendered by
	// the transport as selectable affordances. Nil means free text is
	// expected.
	Choices []string `json:"choices,omitempty"`
}
