// Package dispatch implements the event router and the interaction
// overlays layered on top of catalog navigation: free-text feedback
// capture, two-way operator contact, and the multiple-choice quiz.
package dispatch
