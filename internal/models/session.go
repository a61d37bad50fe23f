package models

// SessionStatus is the lifecycle state of a daily game session.
// Won and GaveUp are terminal: no operation transitions out of them.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusWon        SessionStatus = "won"
	StatusGaveUp     SessionStatus = "gave_up"
)

// Selection is the player's chosen track, stripped to the fields used for
// validation and display
type Selection struct {
	Title     string `json:"title"`
	AlbumName string `json:"albumName"`
}

// SessionState is the per-player, per-language game state for one calendar
// day. It is created lazily on first access and superseded by a fresh state
// on the next day; all mutation goes through the GameService operations.
type SessionState struct {
	PlayerID string
	Language string
	Date     string // YYYY-MM-DD

	HintIndex     int
	RevealedClues map[int]bool
	Selection     *Selection
	Status        SessionStatus

	// FinalScore is set exactly once, on the transition into Won or GaveUp
	FinalScore *int

	// Message is a transient status line ("try the next hint"); never persisted
	Message string
}

// NewSessionState creates a fresh in-progress session for the given day
func NewSessionState(playerID, language, date string) *SessionState {
	return &SessionState{
		PlayerID:      playerID,
		Language:      language,
		Date:          date,
		HintIndex:     0,
		RevealedClues: make(map[int]bool),
		Status:        StatusInProgress,
	}
}

// IsFinished reports whether the session reached a terminal state
func (s *SessionState) IsFinished() bool {
	return s.Status != StatusInProgress
}

// ClueRevealed reports whether the clue at the given hint index has been shown
func (s *SessionState) ClueRevealed(index int) bool {
	return s.RevealedClues[index]
}
