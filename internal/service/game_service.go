package service

import (
	"context"
	"log"
	"sync"
	"time"

	"anthyakshari/internal/models"
)

const (
	msgCorrect  = "Nice! You got it right."
	msgTryAgain = "Not quite. Try the next hint."
	msgGaveUp   = "Raatleda! Better luck tomorrow."
)

// PuzzleSource supplies the day's hint sequence for a language, already
// filtered to the date and sorted ascending by hint number. A nil puzzle or
// one without hints means "no puzzle today" and is not an error.
type PuzzleSource interface {
	PuzzleFor(ctx context.Context, language, date string) (*models.Puzzle, error)
}

// GameService owns the daily game sessions and drives them through the
// reveal / navigate / guess / give-up operations. Sessions live in memory,
// keyed by player and language, and are superseded when the calendar day
// changes; completed games are recorded through the stats service.
//
// Every operation tolerates being called in an invalid state (terminal
// session, out-of-range index, missing selection) and quietly leaves the
// state unchanged. The terminal-state guard under the lock is what makes
// completion append exactly one ledger record.
type GameService struct {
	puzzles PuzzleSource
	stats   *StatsService
	now     func() time.Time

	mu       sync.Mutex
	sessions map[sessionKey]*models.SessionState
}

type sessionKey struct {
	playerID string
	language string
}

// NewGameService creates a new game service
func NewGameService(puzzles PuzzleSource, stats *StatsService) *GameService {
	return &GameService{
		puzzles:  puzzles,
		stats:    stats,
		now:      time.Now,
		sessions: make(map[sessionKey]*models.SessionState),
	}
}

// today formats the current local date the same way the sheet does
func (s *GameService) today() string {
	return s.now().Format("2006-01-02")
}

// CurrentSession returns the player's session and puzzle for today, creating
// a fresh session on first access. A (nil, nil, nil) return means there is no
// puzzle for the day.
func (s *GameService) CurrentSession(ctx context.Context, playerID, language string) (*models.SessionState, *models.Puzzle, error) {
	date := s.today()

	puzzle, err := s.puzzles.PuzzleFor(ctx, language, date)
	if err != nil {
		return nil, nil, err
	}
	if puzzle.HintCount() == 0 {
		return nil, nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessionLocked(playerID, language, date), puzzle, nil
}

// sessionLocked fetches or lazily creates the session for the given day.
// A session left over from a previous day is discarded. Caller holds s.mu.
func (s *GameService) sessionLocked(playerID, language, date string) *models.SessionState {
	key := sessionKey{playerID: playerID, language: language}

	sess, ok := s.sessions[key]
	if !ok || sess.Date != date {
		sess = models.NewSessionState(playerID, language, date)
		s.sessions[key] = sess
	}
	return sess
}

// RevealClue marks the current hint's text clue as shown. Revealing an
// already-revealed clue, or revealing on a finished session, is a no-op.
func (s *GameService) RevealClue(ctx context.Context, playerID, language string) (*models.SessionState, *models.Puzzle, error) {
	sess, puzzle, err := s.CurrentSession(ctx, playerID, language)
	if err != nil || sess == nil {
		return sess, puzzle, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess.Message = ""
	if sess.IsFinished() {
		return sess, puzzle, nil
	}
	sess.RevealedClues[sess.HintIndex] = true
	return sess, puzzle, nil
}

// GoToHint moves the hint pointer. Out-of-range targets and finished
// sessions are ignored. Navigation clears the pending selection but keeps
// the revealed-clue history for every hint.
func (s *GameService) GoToHint(ctx context.Context, playerID, language string, target int) (*models.SessionState, *models.Puzzle, error) {
	sess, puzzle, err := s.CurrentSession(ctx, playerID, language)
	if err != nil || sess == nil {
		return sess, puzzle, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.IsFinished() || target < 0 || target >= puzzle.HintCount() {
		return sess, puzzle, nil
	}

	sess.HintIndex = target
	sess.Selection = nil
	sess.Message = ""
	return sess, puzzle, nil
}

// SetSelection replaces the player's pending track selection
func (s *GameService) SetSelection(ctx context.Context, playerID, language string, sel models.Selection) (*models.SessionState, *models.Puzzle, error) {
	sess, puzzle, err := s.CurrentSession(ctx, playerID, language)
	if err != nil || sess == nil {
		return sess, puzzle, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.IsFinished() {
		return sess, puzzle, nil
	}
	sess.Selection = &sel
	sess.Message = ""
	return sess, puzzle, nil
}

// SubmitGuess validates the pending selection against the current hint.
// Without a selection, or once the session is terminal, the call is a no-op;
// a wrong guess only sets a transient message. A correct guess transitions
// to Won, fixes the final score and appends one win record to the ledger.
func (s *GameService) SubmitGuess(ctx context.Context, playerID, language string) (*models.SessionState, *models.Puzzle, error) {
	sess, puzzle, err := s.CurrentSession(ctx, playerID, language)
	if err != nil || sess == nil {
		return sess, puzzle, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.IsFinished() || sess.Selection == nil {
		return sess, puzzle, nil
	}

	hint := puzzle.Hint(sess.HintIndex)
	if hint == nil {
		return sess, puzzle, nil
	}

	if !Matches(*hint, *sess.Selection) {
		sess.Message = msgTryAgain
		return sess, puzzle, nil
	}

	usedClue := sess.ClueRevealed(sess.HintIndex)
	score := Score(sess.HintIndex, usedClue)

	sess.Status = models.StatusWon
	sess.FinalScore = &score
	sess.Message = msgCorrect

	s.recordCompletion(playerID, language, models.GameRecord{
		Date:         sess.Date,
		Result:       models.ResultWin,
		Score:        score,
		SolvedOnHint: sess.HintIndex + 1,
		UsedClue:     usedClue,
		Timestamp:    s.now().Unix(),
	})

	return sess, puzzle, nil
}

// GiveUp ends the session with a zero score and one loss record. Calling it
// on an already-finished session is a no-op.
func (s *GameService) GiveUp(ctx context.Context, playerID, language string) (*models.SessionState, *models.Puzzle, error) {
	sess, puzzle, err := s.CurrentSession(ctx, playerID, language)
	if err != nil || sess == nil {
		return sess, puzzle, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.IsFinished() {
		return sess, puzzle, nil
	}

	score := 0
	sess.Status = models.StatusGaveUp
	sess.FinalScore = &score
	sess.Message = msgGaveUp

	s.recordCompletion(playerID, language, models.GameRecord{
		Date:         sess.Date,
		Result:       models.ResultLoss,
		Score:        0,
		SolvedOnHint: models.SolvedGaveUp,
		UsedClue:     sess.ClueRevealed(sess.HintIndex),
		Timestamp:    s.now().Unix(),
	})

	return sess, puzzle, nil
}

// ShareOutcome builds the share-text input for a finished session, or nil
// while the session is still in progress
func (s *GameService) ShareOutcome(ctx context.Context, playerID, language string) (*models.ShareOutcome, error) {
	sess, puzzle, err := s.CurrentSession(ctx, playerID, language)
	if err != nil || sess == nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !sess.IsFinished() {
		return nil, nil
	}

	outcome := &models.ShareOutcome{
		Date:       sess.Date,
		Language:   language,
		TotalHints: puzzle.HintCount(),
		UsedClue:   sess.ClueRevealed(sess.HintIndex),
	}
	if sess.FinalScore != nil {
		outcome.Score = *sess.FinalScore
	}
	if sess.Status == models.StatusGaveUp {
		outcome.GaveUp = true
		outcome.SolvedOnHint = models.SolvedGaveUp
	} else {
		outcome.SolvedOnHint = sess.HintIndex + 1
	}

	return outcome, nil
}

// recordCompletion appends the game record to the player's ledger.
// Persistence is best effort: a failed save costs the stats entry, never the
// finished game. Caller holds s.mu, which serializes appends per player.
func (s *GameService) recordCompletion(playerID, language string, rec models.GameRecord) {
	if err := s.stats.RecordGame(playerID, language, rec); err != nil {
		log.Printf("Failed to record game for player %s (%s): %v", playerID, language, err)
	}
}
