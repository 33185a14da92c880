package domain

import "strings"

// Reserved keywords. Matching is case-insensitive on trimmed input; the
// catalog must not use these as labels.
const (
	// KeywordReset clears the path and any overlay, unconditionally.
	KeywordReset = "restart"
	// KeywordStart is the transport's init command, an alias of reset.
	KeywordStart = "/start"
	// KeywordMenu shows the top-level overlay menu.
	KeywordMenu = "main menu"
	// KeywordBack pops one navigation level, clamping at root.
	KeywordBack = "back"
	// KeywordFeedback enters the feedback overlay.
	KeywordFeedback = "leave feedback"
	// KeywordContact enters the operator-contact overlay.
	KeywordContact = "contact operator"
	// KeywordQuiz starts a quiz for the selected subject.
	KeywordQuiz = "start quiz"
)

// IsKeyword reports whether the input matches the given reserved keyword.
func IsKeyword(input, keyword string) bool {
	return strings.EqualFold(strings.TrimSpace(input), keyword)
}
