package domain

// Overlay is the interaction mode that suspends normal catalog navigation.
// The zero value means plain navigation. Modeling it as a single enum makes
// "at most one overlay" a type invariant instead of a convention.
type Overlay string

const (
	OverlayNone     Overlay = ""
	OverlayFeedback Overlay = "feedback"
	OverlayContact  Overlay = "contact"
	OverlayQuiz     Overlay = "quiz"
)

// Session is the per-user record of navigation and overlay state.
// Mutation must happen under the owning user's lock (see pkg/session).
type Session struct {
	// UserID is the stable identifier the session is keyed by.
	UserID string `json:"user_id"`

	// Path is the ordered label sequence from the catalog root to the
	// user's current node. Empty means root.
	Path []string `json:"path,omitempty"`

	// Overlay is the active interaction mode, if any.
	Overlay Overlay `json:"overlay,omitempty"`

	// Quiz holds in-flight quiz progress. Invariant: non-nil exactly
	// when Overlay == OverlayQuiz.
	Quiz *QuizProgress `json:"quiz,omitempty"`
}

// NewSession creates a fresh session positioned at the catalog root.
func NewSession(userID string) *Session {
	return &Session{UserID: userID}
}

// ResetToRoot clears the navigation path and any active overlay,
// discarding in-flight quiz progress.
func (s *Session) ResetToRoot() {
	s.Path = nil
	s.ClearOverlay()
}

// Push appends a label to the navigation path.
func (s *Session) Push(label string) {
	s.Path = append(s.Path, label)
}

// Pop removes the last path element. Popping at the root is a no-op.
func (s *Session) Pop() {
	if len(s.Path) > 0 {
		s.Path = s.Path[:len(s.Path)-1]
	}
}

// BeginFeedback activates the feedback overlay.
func (s *Session) BeginFeedback() {
	s.ClearOverlay()
	s.Overlay = OverlayFeedback
}

// BeginContact activates the operator-contact overlay.
func (s *Session) BeginContact() {
	s.ClearOverlay()
	s.Overlay = OverlayContact
}

// BeginQuiz activates the quiz overlay over a private copy of the
// questions, so later catalog edits cannot alter an in-flight quiz.
func (s *Session) BeginQuiz(questions []Question) {
	s.ClearOverlay()
	s.Overlay = OverlayQuiz
	s.Quiz = NewQuizProgress(questions)
}

// ClearOverlay returns the session to plain navigation.
func (s *Session) ClearOverlay() {
	s.Overlay = OverlayNone
	s.Quiz = nil
}

// Clone returns a deep copy safe for concurrent reads.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	next := *s
	next.Path = append([]string(nil), s.Path...)
	next.Quiz = s.Quiz.Clone()
	return &next
}
