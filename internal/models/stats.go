package models

// GameResult is the outcome of a completed session
type GameResult string

const (
	ResultWin  GameResult = "win"
	ResultLoss GameResult = "loss"
)

// SolvedGaveUp is the SolvedOnHint sentinel for sessions ended by giving up
const SolvedGaveUp = 0

// GameRecord is one completed session in the statistics ledger. Records are
// immutable once appended; the ledger is persisted as an opaque JSON blob.
type GameRecord struct {
	Date         string     `json:"date"`
	Result       GameResult `json:"result"`
	Score        int        `json:"score"`
	SolvedOnHint int        `json:"solvedOnHint"` // 1-based; SolvedGaveUp on loss
	UsedClue     bool       `json:"usedClue"`
	Timestamp    int64      `json:"timestamp"` // unix seconds at completion
}

// Ledger is the append-only log of completed sessions for one player and
// language, in chronological append order
type Ledger struct {
	Games []GameRecord `json:"games"`
}

// Distribution buckets wins by the hint they were solved on, plus give-ups
type Distribution struct {
	Hint1  int `json:"hint1"`
	Hint2  int `json:"hint2"`
	Hint3  int `json:"hint3"`
	Hint4  int `json:"hint4"`
	Hint5  int `json:"hint5"`
	GaveUp int `json:"gaveUp"`
}

// Aggregates are the on-demand statistics computed from a ledger
type Aggregates struct {
	TotalGames    int          `json:"totalGames"`
	Wins          int          `json:"wins"`
	WinRate       int          `json:"winRate"`  // rounded percentage
	AvgScore      float64      `json:"avgScore"` // one decimal place
	CurrentStreak int          `json:"currentStreak"`
	BestStreak    int          `json:"bestStreak"`
	Distribution  Distribution `json:"distribution"`
}
