package models

// ShareOutcome is the completed-session summary handed to the share-text
// renderer. SolvedOnHint is 1-based and SolvedGaveUp when the player gave up.
type ShareOutcome struct {
	Date         string
	Language     string
	SolvedOnHint int
	TotalHints   int
	Score        int
	UsedClue     bool
	GaveUp       bool
}
