/*
Package miet is a menu-navigation and session engine for conversational
tutoring bots.

It models the study material as a catalog tree: interior nodes offer
labeled choices, leaves carry content, and indirection nodes point at
externally stored resources that are dereferenced lazily. Each user has
a session tracking their position in the tree plus at most one active
overlay (feedback capture, operator contact, or a quiz), and the
dispatch router turns every inbound message into exactly one render
instruction.

The engine is transport-agnostic. The Host owns the I/O: a terminal
REPL, an HTTP gateway, or a messenger bridge all feed events through
the same Handle call.

# Usage

	eng, err := miet.New(file.NewCatalogSource("catalog.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	render, err := eng.Handle(ctx, domain.Event{UserID: "u1", Text: "restart"})
	if err != nil {
		log.Fatal(err)
	}
	// render.Text is what to show; render.Choices is the keyboard to
	// offer, nil when free text is expected.

Session stores, quiz sources, operator channels and metrics are all
injected through functional options; everything defaults to in-memory
implementations suitable for a single process.
*/
package miet
